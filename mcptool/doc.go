// Package mcptool exposes the transit normalization service as MCP tools,
// so AI agents can query stations, boards and routes over stdio.
package mcptool
