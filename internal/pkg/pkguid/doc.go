// Package pkguid provides helpers for generating unique identifiers.
//
// String IDs (UUIDv7) tag requests with correlation IDs; numeric
// Snowflake IDs tag every chart the service builds.
package pkguid
