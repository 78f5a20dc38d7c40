package editorprovider

import (
	"bytes"
	"html/template"
)

var _webviewTemplate = template.Must(template.New("webview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<meta http-equiv="Content-Security-Policy" content="default-src 'none'; frame-src {{.Origin}}; style-src 'unsafe-inline';">
<title>{{.Title}}</title>
</head>
<body style="margin:0;padding:0;overflow:hidden">
<iframe id="umlet" src="{{.URL}}" data-webview-id="{{.WebviewID}}" style="border:0;width:100%;height:100vh"></iframe>
</body>
</html>
`))

type webviewPage struct {
	Title     string
	URL       string
	Origin    string
	WebviewID string
}

func renderWebview(page webviewPage) (string, error) {
	var buf bytes.Buffer
	if err := _webviewTemplate.Execute(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
