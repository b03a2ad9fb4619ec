// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"bytes"
	"fmt"
	"text/template"
)

// Prompt templates for the four assistant operations. Each instructs the
// model to answer in a strict shape; the response parsers still tolerate
// fenced code blocks and surrounding prose.

var queriesPromptTmpl = template.Must(template.New("queries").Parse(`I'm conducting a literature review with the following research questions:

{{.Questions}}

Please generate 3-5 effective search queries for academic databases that would help me find relevant literature.
Format each query as a set of terms with appropriate Boolean operators (AND, OR, NOT).
For each query, provide a brief explanation of what aspect of my research it targets.
Format your response as a JSON array of objects, each with 'query' and 'explanation' fields. Do not include any text outside the JSON array.
`))

var databasesPromptTmpl = template.Must(template.New("databases").Parse(`I'm conducting a literature review with the following research questions:

{{.Questions}}

And these search queries:

{{.Queries}}

From this list of academic databases:
{{.Databases}}

Please recommend which ones would be most relevant for my research, and explain why.
Format your response as a JSON array of objects, each with 'database' and 'reason' fields.
Only include databases from the list provided. Do not include any text outside the JSON array.
`))

var reviewPromptTmpl = template.Must(template.New("review").Parse(`I'm writing a {{.Methodology}} literature review addressing these research questions:

{{.Questions}}

Here are the selected articles for review:

{{.Articles}}

Please generate a comprehensive literature review following the {{.Methodology}} approach.

Include:
1. Introduction with research questions
2. Methodology section explaining the review process
3. Thematic analysis of the literature
4. Discussion of findings in relation to research questions
5. Gaps in the literature and suggestions for future research
6. Conclusion
7. Suggestions for where figures should be included (marked as [FIGURE: Description of suggested figure])

Format the review with appropriate headings and subheadings.
`))

var expandPromptTmpl = template.Must(template.New("expand").Parse(`I have a literature review with the following section that needs expansion:

# {{.Title}}
{{.Body}}

Please provide a more detailed and comprehensive version of this section,
maintaining the same overall structure but adding more depth, analysis, and connections
between the ideas presented. Keep the same academic tone and style.
`))

func renderPrompt(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
