// Package memory provides in-memory implementations of the kbportal
// catalog and account services. State lives for the process lifetime
// and is discarded on exit; there is no persistence layer by contract.
package memory
