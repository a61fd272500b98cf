// Package landing renders the product landing page, and provides the small
// HTML rendering framework the page is built with, on top of the
// html/template package.
//
// The framework is organized around Components and Pages. A Component is some
// piece of the HTML document that you want included in the page's output,
// like a feature card or the signup form. A Page is a
// Component that gets rendered itself rather than being included in another
// Component. The landing page is a Page; the layout that supplies the
// document head, navbar, and footer is a Component the Page relies on.
//
// Each server has a Site, which acts as a singleton for the process and
// provides the fs.FS containing the templates that Components are using. The
// Site is available at render time as .Site, so it holds the configuration
// used across all pages. The Page itself is available as .Page.
//
// Components are structs, with properties for whatever data they want to pass
// to their templates. When a Component relies on another Component, it keeps
// an instance of that Component as a property and returns it from
// UseComponents, so the child's templates and resources are included
// whenever the parent is rendered.
//
// The landing page itself is composed in internal/pages, from the
// components in internal/components.
package landing
