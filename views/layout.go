package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

// mountScript settles elements rendered in their pre-mount state.
const mountScript = `document.addEventListener("DOMContentLoaded",function(){` +
	`document.querySelectorAll("[data-mount=pending]").forEach(function(el){` +
	`requestAnimationFrame(function(){el.classList.remove("opacity-0","translate-y-8");` +
	`el.classList.add("opacity-100","translate-y-0");el.dataset.mount="done";});});});`

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = BrandName + " | Medical Practice"
	}
	if config.Description == "" {
		config.Description = "Comprehensive healthcare services with over 15 years of experience."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				g.Group(content),
				Script(g.Raw(mountScript)),
			),
		),
	})
}
