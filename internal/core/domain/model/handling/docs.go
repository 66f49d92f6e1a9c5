// Package handling contains the handling side of the cargo domain: the
// immutable facts that a cargo was received, loaded, unloaded, customs
// cleared or claimed, the per-cargo history of those facts, and the factory
// that turns unverified handling reports into trusted events.
//
// Events are value objects. Two reports describing the same physical fact
// (same cargo, type, location, voyage and completion time) are the same
// event for business purposes regardless of when the system learned about
// them. The registration time is kept for auditing and tie breaking only.
//
// The factory is the single entry point for event creation from external
// input. It resolves the referenced cargo, voyage and location against
// their lookup ports and rejects reports that reference unknown entities
// or violate the type/voyage contract.
package handling
