package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// home handles GET /
func (s *Server) home(c *gin.Context) {
	var b strings.Builder
	b.WriteString("<html><head><title>MOE</title></head><body>")
	b.WriteString("<h1>MOE</h1>")
	b.WriteString("<p>Metric optimization engine endpoints:</p><ul>")
	for _, rt := range routeTable {
		b.WriteString(fmt.Sprintf(`<li><a href="%s">%s</a> %s</li>`, rt.path, rt.name, rt.path))
	}
	b.WriteString("</ul>")
	// The displayable connection variant renders its identity here when
	// the debug toolbar is enabled.
	if str, ok := s.conn.(fmt.Stringer); ok {
		b.WriteString(fmt.Sprintf("<footer><small>%s</small></footer>", str.String()))
	}
	b.WriteString("</body></html>")
	c.Data(http.StatusOK, htmlContentType, []byte(b.String()))
}

// docs handles GET /docs
func (s *Server) docs(c *gin.Context) {
	var b strings.Builder
	b.WriteString("<html><head><title>MOE docs</title></head><body>")
	b.WriteString("<h1>Documentation</h1>")
	b.WriteString("<p>Each Gaussian process endpoint accepts a JSON POST body. ")
	b.WriteString("Its <code>/pretty</code> variant serves an example request and response.</p><ul>")
	for _, name := range []string{"gp_ei_pretty", "gp_mean_var_pretty", "gp_next_points_epi_pretty"} {
		if path, ok := PathFor(name); ok {
			b.WriteString(fmt.Sprintf(`<li><a href="%s">%s</a></li>`, path, path))
		}
	}
	b.WriteString("</ul></body></html>")
	c.Data(http.StatusOK, htmlContentType, []byte(b.String()))
}

// about handles GET /about
func (s *Server) about(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, []byte(
		"<html><head><title>About MOE</title></head><body>"+
			"<h1>About</h1>"+
			"<p>MOE is a metric optimization engine: it suggests the next points "+
			"to sample when optimizing an expensive black-box function.</p>"+
			"</body></html>"))
}
