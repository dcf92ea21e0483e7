// Package faqcrawl crawls websites to locate and extract Frequently Asked
// Questions as structured question/answer pairs with provenance.
//
// This package contains domain types, interfaces and the pure heuristics
// shared by every implementation, following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, rod/, sqlite/, gin/).
package faqcrawl
