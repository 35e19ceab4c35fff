package site

import "html/template"

// Page layout and stylesheet for the generated site. Kept deliberately
// self-contained so the output needs no external assets beyond css/style.css.

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.Site.Title}}</title>
    <link rel="stylesheet" href="{{.Root}}css/style.css">
</head>
<body>
    <header>
        <div class="container">
            <h1>{{.Site.Title}}</h1>
            <p>{{.Site.Description}}</p>
        </div>
    </header>

    <nav>
        <ul>
{{- range .Nav}}
            <li><a href="{{.Href}}">{{.Label}}</a></li>
{{- end}}
        </ul>
    </nav>

    <main>
        <div class="container">
{{.Content}}
        </div>
    </main>

    <footer>
        <div class="container">
            <p>&copy; {{.Year}} {{.Site.Title}}. All rights reserved.</p>
        </div>
    </footer>
</body>
</html>
`

const articleTemplate = `            <article>
                <h1>{{.Title}}</h1>
{{- if .Date}}
                <div class="meta">Published: {{.Date}}</div>
{{- end}}
                <div class="content">
{{.Body}}
                </div>
            </article>`

const indexTemplate = `            <article>
                <h1>Welcome to {{.Site.Title}}</h1>
{{- if .Pages}}
                <h2>Pages</h2>
                <div class="page-list">
{{- range .Pages}}
                    <div class="page-card">
                        <h3><a href="pages/{{.Slug}}.html">{{.Title}}</a></h3>
                        <p>{{.Teaser}}</p>
                    </div>
{{- end}}
                </div>
{{- end}}
{{- if .Posts}}
                <h2>Recent Posts</h2>
                <div class="page-list">
{{- range .Posts}}
                    <div class="page-card">
                        <h3><a href="posts/{{.Slug}}.html">{{.Title}}</a></h3>
                        <p class="meta">{{.Date}}</p>
                        <p>{{.Teaser}}</p>
                    </div>
{{- end}}
                </div>
{{- end}}
            </article>`

var (
	layoutTmpl  = template.Must(template.New("layout").Parse(layoutTemplate))
	articleTmpl = template.Must(template.New("article").Parse(articleTemplate))
	indexTmpl   = template.Must(template.New("index").Parse(indexTemplate))
)

const stylesheet = `:root {
    --primary-color: #2c3e50;
    --secondary-color: #3498db;
    --text-color: #333;
    --bg-color: #fff;
    --border-color: #ddd;
}

* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
    line-height: 1.6;
    color: var(--text-color);
    background-color: var(--bg-color);
}

header {
    background-color: var(--primary-color);
    color: white;
    padding: 1rem 0;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}

.container {
    max-width: 1200px;
    margin: 0 auto;
    padding: 0 2rem;
}

header h1 {
    font-size: 2rem;
    margin-bottom: 0.5rem;
}

header p {
    opacity: 0.9;
}

nav {
    background-color: #34495e;
    padding: 0.75rem 0;
}

nav ul {
    list-style: none;
    display: flex;
    gap: 2rem;
    max-width: 1200px;
    margin: 0 auto;
    padding: 0 2rem;
}

nav a {
    color: white;
    text-decoration: none;
    transition: opacity 0.2s;
}

nav a:hover {
    opacity: 0.8;
}

main {
    padding: 2rem 0;
    min-height: 60vh;
}

article {
    background: white;
    padding: 2rem;
    margin-bottom: 2rem;
    border-radius: 8px;
    box-shadow: 0 2px 4px rgba(0,0,0,0.05);
}

article h1, article h2 {
    color: var(--primary-color);
    margin-bottom: 1rem;
}

article img {
    max-width: 100%;
    height: auto;
    border-radius: 4px;
}

.meta {
    color: #7f8c8d;
    font-size: 0.9rem;
    margin-bottom: 1rem;
}

footer {
    background-color: var(--primary-color);
    color: white;
    text-align: center;
    padding: 2rem 0;
    margin-top: 3rem;
}

.page-list {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
    gap: 1.5rem;
    margin-top: 2rem;
}

.page-card {
    background: white;
    padding: 1.5rem;
    border-radius: 8px;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
    transition: transform 0.2s, box-shadow 0.2s;
}

.page-card:hover {
    transform: translateY(-2px);
    box-shadow: 0 4px 8px rgba(0,0,0,0.15);
}

.page-card h3 {
    color: var(--primary-color);
    margin-bottom: 0.5rem;
}

.page-card a {
    color: var(--secondary-color);
    text-decoration: none;
}

@media (max-width: 768px) {
    nav ul {
        flex-direction: column;
        gap: 0.5rem;
    }

    .page-list {
        grid-template-columns: 1fr;
    }
}
`
