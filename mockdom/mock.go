//go:build !js || !wasm

// Package mockdom is a syscall/js-free stand-in for honnef.co/go/js/dom/v2,
// implementing exactly the bridge.Element/bridge.Style/bridge.Document
// surface a Wire needs, so the reactive kernel's DOM-facing tests run under
// plain `go test`.
package mockdom

import (
	"strings"
	"sync"

	"github.com/pulsarjs/pulsar/bridge"
)

// MockStyle implements bridge.Style with an in-memory property bag.
type MockStyle struct {
	mu         sync.RWMutex
	properties map[string]string
}

func NewMockStyle() *MockStyle {
	return &MockStyle{properties: make(map[string]string)}
}

func (s *MockStyle) Get(property string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.properties[property]
}

func (s *MockStyle) Set(property, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[property] = value
}

func (s *MockStyle) Remove(property string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.properties, property)
}

// MockElement implements bridge.Element with a small in-memory tree.
type MockElement struct {
	mu          sync.RWMutex
	tagName     string
	className   string
	textContent string
	innerHTML   string
	value       string
	attributes  map[string]string
	style       *MockStyle
	children    []*MockElement
	parent      *MockElement
	connected   bool
}

// NewMockElement creates a detached element (Connected() == false until it
// is appended under a connected element, such as a MockDocument's Body()).
func NewMockElement(tagName string) *MockElement {
	return &MockElement{
		tagName:    tagName,
		attributes: make(map[string]string),
		style:      NewMockStyle(),
	}
}

func (m *MockElement) TagName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tagName
}

func (m *MockElement) GetAttribute(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.attributes[name]
}

func (m *MockElement) SetAttribute(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attributes[name] = value
	if name == "class" {
		m.className = value
	}
}

func (m *MockElement) RemoveAttribute(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attributes, name)
	if name == "class" {
		m.className = ""
	}
}

func (m *MockElement) ClassName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.className
}

func (m *MockElement) SetClassName(className string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.className = className
	m.attributes["class"] = className
}

func (m *MockElement) TextContent() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.textContent
}

func (m *MockElement) SetTextContent(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textContent = text
}

func (m *MockElement) InnerHTML() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.innerHTML
}

func (m *MockElement) SetInnerHTML(html string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.innerHTML = html
}

func (m *MockElement) Value() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value
}

func (m *MockElement) SetValue(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.attributes["value"] = value
}

func (m *MockElement) Style() bridge.Style {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.style
}

func (m *MockElement) Parent() bridge.Element {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.parent == nil {
		return nil
	}
	return m.parent
}

func (m *MockElement) Children() []bridge.Element {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]bridge.Element, len(m.children))
	for i, c := range m.children {
		out[i] = c
	}
	return out
}

func (m *MockElement) AppendChild(child bridge.Element) {
	c, ok := child.(*MockElement)
	if !ok {
		return
	}
	m.mu.Lock()
	wasConnected := m.connected
	m.children = append(m.children, c)
	c.parent = m
	m.mu.Unlock()
	if wasConnected {
		c.markConnected(true)
	}
}

func (m *MockElement) RemoveChild(child bridge.Element) {
	c, ok := child.(*MockElement)
	if !ok {
		return
	}
	m.mu.Lock()
	for i, existing := range m.children {
		if existing == c {
			m.children = append(m.children[:i], m.children[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	c.parent = nil
	c.markConnected(false)
}

// Connected reports whether this element is reachable from a root that was
// marked connected (mirroring the real DOM's isConnected bit).
func (m *MockElement) Connected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// markConnected propagates a connectedness change down the subtree, the
// mock equivalent of appendChild/removeChild flipping isConnected on a
// real DOM node and all its descendants.
func (m *MockElement) markConnected(connected bool) {
	m.mu.Lock()
	m.connected = connected
	children := append([]*MockElement(nil), m.children...)
	m.mu.Unlock()
	for _, c := range children {
		c.markConnected(connected)
	}
}

func (m *MockElement) Raw() any { return m }

// MockDocument is a minimal document root: a body element that is
// connected by construction. GetElementByID walks the body's subtree;
// there is no separate id index.
type MockDocument struct {
	mu   sync.RWMutex
	body *MockElement
}

// NewMockDocument creates a document whose Body() is connected.
func NewMockDocument() *MockDocument {
	body := NewMockElement("body")
	body.connected = true
	return &MockDocument{body: body}
}

func (d *MockDocument) CreateElement(tagName string) bridge.Element {
	return NewMockElement(tagName)
}

func (d *MockDocument) GetElementByID(id string) bridge.Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var find func(el *MockElement) *MockElement
	find = func(el *MockElement) *MockElement {
		if el.GetAttribute("id") == id {
			return el
		}
		for _, child := range el.children {
			if found := find(child); found != nil {
				return found
			}
		}
		return nil
	}
	if found := find(d.body); found != nil {
		return found
	}
	return nil
}

func (d *MockDocument) Body() bridge.Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.body
}

// HasClass reports whether className is one of the element's classes;
// kept as a small test convenience beyond the bridge.Element contract.
func (m *MockElement) HasClass(className string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range strings.Fields(m.className) {
		if c == className {
			return true
		}
	}
	return false
}
