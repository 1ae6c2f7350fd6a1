// Package faqdoc extracts question/answer pairs from semi-structured HTML
// and turns them into FAQPage structured data. Pages authored with
// heterogeneous tools (WordPress FAQ blocks, accordions, definition lists,
// freeform headings, inline "Q:/A:" prose) are scanned by a set of
// independent extraction strategies whose results are merged, deduplicated
// and bounded before schema emission.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package faqdoc
