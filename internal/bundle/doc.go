// Package bundle holds the embedded template store. Each bundle is a
// directory of ${name}-placeholder payloads plus a bundle.yaml manifest
// that declares the output paths and the placeholder schema. Manifests are
// validated against an embedded JSON Schema at load time, and their
// schema_version is checked against the range this binary supports.
package bundle
