package tools

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	// Política de conteúdo gerado por usuário: mantém formatação rica,
	// derruba qualquer vetor de execução de script.
	htmlPolicy = bluemonday.UGCPolicy()

	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
)

// SanitizeHTML limpa HTML vindo do editor antes de persistir/exibir.
// Conteúdo rico nunca chega à página sem passar por aqui.
func SanitizeHTML(html string) string {
	if html == "" {
		return ""
	}
	return htmlPolicy.Sanitize(html)
}

// RenderContent resolve o que a página de detalhes exibe: HTML sanitizado
// quando existir, senão o Markdown convertido (e também sanitizado).
func RenderContent(html, md string) string {
	if strings.TrimSpace(html) != "" {
		return SanitizeHTML(html)
	}
	if strings.TrimSpace(md) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return ""
	}
	return SanitizeHTML(buf.String())
}
