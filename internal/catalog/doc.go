// Package catalog declares the static tool and resource catalogs.
//
// The tool catalog maps each tool name to its description and JSON Schema
// input descriptor; the resource catalog maps each better-auth:// URI to its
// metadata. Both are fixed at process start: Tools and Resources return the
// same ordered content on every call, and the descriptors double as the
// single source of truth for argument validation via Validator.
package catalog
