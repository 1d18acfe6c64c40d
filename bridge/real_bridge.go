//go:build js && wasm

package bridge

import (
	domv2 "honnef.co/go/js/dom/v2"
)

// RealStyle wraps a dom/v2 CSSStyleDeclaration.
type RealStyle struct {
	style *domv2.CSSStyleDeclaration
}

func (r *RealStyle) Get(property string) string {
	if r.style == nil {
		return ""
	}
	return r.style.GetPropertyValue(property)
}

func (r *RealStyle) Set(property, value string) {
	if r.style == nil {
		return
	}
	r.style.SetProperty(property, value, "")
}

func (r *RealStyle) Remove(property string) {
	if r.style == nil {
		return
	}
	r.style.RemoveProperty(property)
}

// RealElement wraps a domv2.Element to implement Element.
type RealElement struct {
	element domv2.Element
}

// NewRealElement wraps a dom.Element, returning nil for a nil element so
// callers can keep using plain `== nil` checks on the Element interface.
func NewRealElement(element domv2.Element) *RealElement {
	if element == nil {
		return nil
	}
	return &RealElement{element: element}
}

func (r *RealElement) TagName() string { return r.element.TagName() }

func (r *RealElement) GetAttribute(name string) string { return r.element.GetAttribute(name) }
func (r *RealElement) SetAttribute(name, value string) { r.element.SetAttribute(name, value) }
func (r *RealElement) RemoveAttribute(name string)      { r.element.RemoveAttribute(name) }

func (r *RealElement) ClassName() string        { return r.element.GetAttribute("class") }
func (r *RealElement) SetClassName(value string) { r.element.SetAttribute("class", value) }

func (r *RealElement) TextContent() string        { return r.element.TextContent() }
func (r *RealElement) SetTextContent(text string) { r.element.SetTextContent(text) }

func (r *RealElement) InnerHTML() string        { return r.element.InnerHTML() }
func (r *RealElement) SetInnerHTML(html string) { r.element.SetInnerHTML(html) }

func (r *RealElement) Value() string {
	switch el := r.element.(type) {
	case domv2.HTMLInputElement:
		return el.Value()
	case domv2.HTMLTextAreaElement:
		return el.Value()
	case domv2.HTMLSelectElement:
		return el.Value()
	default:
		return r.element.GetAttribute("value")
	}
}

func (r *RealElement) SetValue(value string) {
	switch el := r.element.(type) {
	case domv2.HTMLInputElement:
		el.SetValue(value)
	case domv2.HTMLTextAreaElement:
		el.SetValue(value)
	case domv2.HTMLSelectElement:
		el.SetValue(value)
	default:
		r.element.SetAttribute("value", value)
	}
}

func (r *RealElement) Style() Style {
	if htmlEl, ok := r.element.(domv2.HTMLElement); ok {
		return &RealStyle{style: htmlEl.Style()}
	}
	return &RealStyle{}
}

func (r *RealElement) Parent() Element {
	return NewRealElement(r.element.ParentElement())
}

func (r *RealElement) Children() []Element {
	nodes := r.element.ChildNodes()
	out := make([]Element, 0, len(nodes))
	for _, node := range nodes {
		if el, ok := node.(domv2.Element); ok {
			out = append(out, NewRealElement(el))
		}
	}
	return out
}

func (r *RealElement) AppendChild(child Element) {
	if c, ok := child.(*RealElement); ok {
		r.element.AppendChild(c.element)
	}
}

func (r *RealElement) RemoveChild(child Element) {
	if c, ok := child.(*RealElement); ok {
		r.element.RemoveChild(c.element)
	}
}

// Connected mirrors the DOM `isConnected` bit (spec.md §4.8, §9): a wire's
// run short-circuits once its target has left the document.
func (r *RealElement) Connected() bool {
	return r.element.Underlying().Get("isConnected").Bool()
}

func (r *RealElement) Raw() any { return r.element.Underlying() }

// RealDocument wraps the global document for element creation and lookup.
type RealDocument struct {
	doc domv2.Document
}

// NewRealDocument wraps the browser's global document (honnef.co/go/js/dom/v2's
// GetWindow().Document(), the same accessor the teacher's dom package
// exposes as the package-level `Document` var in dom/dom.go).
func NewRealDocument() *RealDocument {
	return &RealDocument{doc: domv2.GetWindow().Document()}
}

// WrapRealDocument wraps an explicit domv2.Document, for callers (tests,
// iframes) that don't want the ambient global document.
func WrapRealDocument(doc domv2.Document) *RealDocument { return &RealDocument{doc: doc} }

func (d *RealDocument) CreateElement(tagName string) Element {
	return NewRealElement(d.doc.CreateElement(tagName))
}

func (d *RealDocument) GetElementByID(id string) Element {
	return NewRealElement(d.doc.GetElementByID(id))
}

func (d *RealDocument) Body() Element {
	return NewRealElement(d.doc.QuerySelector("body"))
}
