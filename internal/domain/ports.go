package domain

// SourceLoader decodes the catalog and invoices from files.
type SourceLoader interface {
	LoadCatalog(path string) (Catalog, error)
	LoadInvoices(path string) ([]Invoice, error)
}

// ConfigLoader loads project configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (ProjectConfig, error)
}

// GitInfo reports version-control metadata for a path.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
