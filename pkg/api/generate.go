// Package api holds the types and chi routing generated from swagger/openapi.yaml.
package api

//go:generate go tool oapi-codegen -config oapi-codegen.yaml ../../swagger/openapi.yaml
