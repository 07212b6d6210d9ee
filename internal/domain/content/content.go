package content

import "encoding/json"

// DocumentType tags the singleton website content document.
const DocumentType = "website"

// Document is the website content envelope: a type tag plus a mapping
// from section name to an opaque JSON value. On the wire it is flat —
// the type tag and every section sit at the top level of one object.
type Document struct {
	Type     string
	Sections map[string]json.RawMessage
}

// Section returns the named section value, if present.
func (d Document) Section(name string) (json.RawMessage, bool) {
	v, ok := d.Sections[name]
	return v, ok
}

// SetSection replaces the entire value of the named section. There is
// no deep merge.
func (d *Document) SetSection(name string, data json.RawMessage) {
	if d.Sections == nil {
		d.Sections = make(map[string]json.RawMessage, 1)
	}
	d.Sections[name] = data
}

func (d Document) MarshalJSON() ([]byte, error) {
	flat := make(map[string]json.RawMessage, len(d.Sections)+1)
	for name, value := range d.Sections {
		if name == "type" {
			continue
		}
		flat[name] = value
	}

	typeTag, err := json.Marshal(d.Type)
	if err != nil {
		return nil, err
	}
	flat["type"] = typeTag

	return json.Marshal(flat)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	if typeTag, ok := flat["type"]; ok {
		if err := json.Unmarshal(typeTag, &d.Type); err != nil {
			return err
		}
		delete(flat, "type")
	}

	d.Sections = flat
	return nil
}

// UpdateRequest mutates exactly one named section of the document.
type UpdateRequest struct {
	Section string          `json:"section" binding:"required"`
	Data    json.RawMessage `json:"data" binding:"required"`
}

// Hero is the shape of the default hero section.
type Hero struct {
	Title          string `json:"title"`
	TitleHighlight string `json:"titleHighlight"`
	Description    string `json:"description"`
}

// Service is one entry of the default services section.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Default returns the hardcoded content served when no document has
// been persisted. It is deterministic and is never written to storage.
func Default() Document {
	doc := Document{Type: DocumentType, Sections: make(map[string]json.RawMessage, 2)}

	doc.SetSection("hero", mustRaw(Hero{
		Title:          "Transform Your Business with",
		TitleHighlight: "Digital Excellence",
		Description: "We deliver cutting-edge digital solutions including web development, " +
			"mobile apps, graphic design, social media management, and SEO services " +
			"to help your business thrive.",
	}))

	doc.SetSection("services", mustRaw([]Service{
		{Title: "Web Development", Description: "Custom websites built with modern technologies"},
		{Title: "Mobile Apps", Description: "Native and cross-platform mobile applications"},
		{Title: "Graphic Design", Description: "Creative designs that capture your brand essence"},
		{Title: "Social Media", Description: "Complete social media setup and management"},
		{Title: "Google SEO", Description: "Optimize your online presence and rankings"},
	}))

	return doc
}

func mustRaw(v interface{}) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
