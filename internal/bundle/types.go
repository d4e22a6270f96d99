package bundle

// Manifest is the declared contract of one template bundle: which files it
// renders and which variables those files need. The variable list is the
// placeholder schema: requirements are declared here, never discovered by
// scanning template bodies at render time.
type Manifest struct {
	Name          string     `yaml:"name" json:"name"`
	Category      string     `yaml:"category" json:"category"`
	SchemaVersion string     `yaml:"schema_version" json:"schema_version"`
	Description   string     `yaml:"description,omitempty" json:"description,omitempty"`
	Files         []File     `yaml:"files" json:"files"`
	Variables     []Variable `yaml:"variables,omitempty" json:"variables,omitempty"`
}

// File maps one template payload to its relative output path inside the
// generated project.
type File struct {
	Path     string `yaml:"path" json:"path"`
	Template string `yaml:"template" json:"template"`
}

// Variable declares one placeholder a bundle's templates may reference.
// Required variables must come from inference; optional ones carry a
// cosmetic default (colors, sample paths) independent of the request.
type Variable struct {
	Name        string `yaml:"name" json:"name"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Default     string `yaml:"default,omitempty" json:"default,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Bundle is a loaded template bundle: its manifest plus the raw template
// bodies keyed by template file name.
type Bundle struct {
	Manifest
	payloads map[string]string
}

// Payload returns the raw template body for a template file name declared
// in the manifest.
func (b *Bundle) Payload(template string) (string, bool) {
	body, ok := b.payloads[template]
	return body, ok
}

// RequiredVars returns the names of variables the bundle cannot render
// without.
func (b *Bundle) RequiredVars() []string {
	var names []string
	for _, v := range b.Variables {
		if v.Required {
			names = append(names, v.Name)
		}
	}
	return names
}

// Defaults returns the mapping of optional variables to their declared
// default values.
func (b *Bundle) Defaults() map[string]string {
	defaults := make(map[string]string)
	for _, v := range b.Variables {
		if !v.Required && v.Default != "" {
			defaults[v.Name] = v.Default
		}
	}
	return defaults
}
