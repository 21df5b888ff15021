// Package premis builds and reads PREMIS 2 preservation metadata as
// xmltree element trees.
//
// Entities are identified by identifier segments whose tag names derive
// from a Prefix: Resolve("IdentifierType", PrefixLinkingAgent) names
// linkingAgentIdentifierType. Builders return a complete element or an
// error, never a partial tree. Linking, relationship and dependency
// segments are copies of the referenced entity's identifier, not
// references to it.
//
// Lookups report absence with nil, false or an empty sequence; only
// malformed input is an error. Errors carry an errors.ErrorCode.
package premis
