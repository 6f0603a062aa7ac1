// Package kbportal is the core of an internal knowledge-base portal that
// lets field engineers locate equipment-maintenance documents and consult
// a Gemini-backed assistant for technical explanations grounded in web
// search.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., memory/, gemini/, http/).
package kbportal
