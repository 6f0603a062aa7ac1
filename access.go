package kbportal

// Operation identifies a portal action subject to the access gate.
type Operation string

// Operation constants.
const (
	OpListDocuments  Operation = "list_documents"
	OpToggleFavorite Operation = "toggle_favorite"
	OpOpenAssistant  Operation = "open_assistant"
	OpExplainTerm    Operation = "explain_term"
	OpLogout         Operation = "logout"
	OpCreateDocument Operation = "create_document"
	OpUpdateDocument Operation = "update_document"
	OpCreateAccount  Operation = "create_account"
	OpManageAccounts Operation = "manage_accounts"
)

// Can reports whether the role is permitted to perform op. Creating and
// updating documents and managing accounts are ADMIN-only; everything
// else is open to any authenticated role. Unknown operations are denied.
//
// The gate is consulted at the request boundary before a mutation
// reaches the store. Any collaborator that can reach the store directly
// bypasses it, so the HTTP layer must remain the only untrusted entry
// point into the process.
func (r Role) Can(op Operation) bool {
	if !r.Valid() {
		return false
	}
	switch op {
	case OpCreateDocument, OpUpdateDocument, OpCreateAccount, OpManageAccounts:
		return r == RoleAdmin
	case OpListDocuments, OpToggleFavorite, OpOpenAssistant, OpExplainTerm, OpLogout:
		return true
	}
	return false
}
