package views

import (
	"drmike/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders a decorative lucide glyph through iconify.
func Icon(glyph models.Glyph) g.Node {
	classes := "iconify inline-block"
	if glyph.Class != "" {
		classes += " " + glyph.Class
	}
	return Span(
		Class(classes),
		g.Attr("data-icon", "lucide:"+glyph.Name),
		g.Attr("aria-hidden", "true"),
	)
}

func glyph(name, class string) g.Node {
	return Icon(models.Glyph{Name: name, Class: class})
}

// componentID stamps the registry id of a repeated component. An index the
// table does not cover gets no id at all.
func componentID(id string) g.Node {
	if id == "" {
		return nil
	}
	return g.Attr("data-component-id", id)
}
