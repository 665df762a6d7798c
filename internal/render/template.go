package render

// builtinTemplate is the default layout for the generated tags page: one
// case-insensitively sorted section per tag, each listing its pages as
// markdown links. Hosts needing a different layout point TemplatePath at
// their own file; it receives the same []TagGroup root value and the same
// slugify/pageurl helpers.
const builtinTemplate = `# Contents grouped by tag
{{range .}}
## <span id="{{.Anchor}}" class="tag">{{.Name}}</span>

{{range .Pages}}* [{{.Title}}]({{pageurl .Filename}})
{{end}}{{end}}`
