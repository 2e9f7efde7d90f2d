package domain

// Authorization policy: pure decision functions over an identity and the
// stored article. Callers resolve the identity first; a nil identity is
// never silently denied here, it must be rejected upstream with
// ErrCredentialAbsent.

// CanCreate reports whether the identity may create articles. Any resolved
// identity may.
func CanCreate(identity *User) bool {
	return identity != nil
}

// CanEdit reports whether the identity may edit the article: the author
// themselves, or an admin. Admin overrides ownership unconditionally.
func CanEdit(identity *User, article *Article) bool {
	if identity == nil {
		return false
	}
	return identity.Name == article.Author || identity.Role == RoleAdmin
}

// CanDelete applies the same rule as CanEdit.
func CanDelete(identity *User, article *Article) bool {
	return CanEdit(identity, article)
}
