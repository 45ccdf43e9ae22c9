// Package types defines the entity types, enumeration vocabularies,
// configuration, and standard errors for the kairo knowledge store.
package types
