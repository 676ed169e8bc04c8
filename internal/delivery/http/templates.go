package http

import "html/template"

// pageTemplates holds the two server-rendered pages, embedded so the binary
// has no runtime file dependencies.
func pageTemplates() *template.Template {
	return template.Must(template.New("pages").Parse(pagesHTML))
}

const pagesHTML = `
{{define "index"}}
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Cartwise</title>
  <style>
    body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
    textarea { width: 100%; min-height: 6rem; font-size: 1rem; }
    button { margin-top: 0.5rem; padding: 0.5rem 1.5rem; font-size: 1rem; }
    .error { color: #b00020; margin: 1rem 0; }
  </style>
</head>
<body>
  <h1>Cartwise</h1>
  <p>Describe what you want to buy, including any budget and location.</p>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <form method="post" action="/plan">
    <textarea name="request" placeholder="I need 2 laptops and 1 mouse, budget 3000 MYR in Kuala Lumpur">{{.Request}}</textarea>
    <br>
    <button type="submit">Find the best bundle</button>
  </form>
</body>
</html>
{{end}}

{{define "result"}}
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Cartwise - your bundle</title>
  <style>
    body { font-family: sans-serif; max-width: 900px; margin: 2rem auto; padding: 0 1rem; }
    .badge { display: inline-block; background: #eef; border-radius: 1rem; padding: 0.25rem 0.75rem; margin-right: 0.5rem; }
    table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
    th, td { border: 1px solid #ccc; padding: 0.5rem; text-align: left; }
    th { background: #f5f5f5; }
  </style>
</head>
<body>
  <h1>Your bundle</h1>
  <p>
    <span class="badge">Location: {{.Location}}</span>
    {{if .Budget}}<span class="badge">Budget: {{.Budget}} {{.Currency}}</span>{{end}}
    <span class="badge">Total: {{printf "%.2f" .Total}} {{.Currency}}</span>
  </p>
  {{if .Selected}}
  <table>
    <tr>
      <th>Product</th><th>Option</th><th>Unit price</th><th>Qty</th><th>Row total</th><th>Link</th>
    </tr>
    {{range .Selected}}
    <tr>
      <td>{{.Product}}</td>
      <td>{{.Title}}</td>
      <td>{{printf "%.2f" .UnitPrice}}</td>
      <td>{{printf "%.0f" .Quantity}}</td>
      <td>{{printf "%.2f" .RowTotal}}</td>
      <td><a href="{{.ProductLink}}">view</a></td>
    </tr>
    {{end}}
  </table>
  {{else}}
  <p>No offers could be selected for this request.</p>
  {{end}}
  <p><a href="/">Start over</a></p>
</body>
</html>
{{end}}
`
