// Package profile loads comparison profiles: small files naming the source
// temperaments, the reference temperaments and display preferences for
// the compare command.
//
// Profiles may be written as JSONC (JSON with Comments, via
// github.com/tidwall/jsonc) or YAML (gopkg.in/yaml.v3). The format is
// chosen by file extension. When no --profile flag is given the CLI looks
// for one of the DefaultFileNames in the working directory.
package profile
