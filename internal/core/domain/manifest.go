package domain

// DefaultVendorKey is the key under a package's "extra" object that holds its metadata block.
const DefaultVendorKey = "php-remix"

// Manifest is the parsed lock file, reduced to what the scanner needs.
type Manifest struct {
	// Packages holds the locked packages in manifest order.
	Packages []Package
}

// Package is a single locked dependency.
type Package struct {
	// Name is the package name in vendor/package form.
	Name string

	// Metadata is the vendor metadata block, nil when the package carries none.
	Metadata *MetadataBlock
}

// MetadataBlock is the vendor extension block found under extra[vendorKey].
// Every field is nil when absent or empty in the manifest.
type MetadataBlock struct {
	Run        *HookEntry
	Terminated *HookEntry
	DI         *DIValue
}

// IsEmpty reports whether the block carries no registrations at all.
func (b *MetadataBlock) IsEmpty() bool {
	return b == nil || (b.Run.IsEmpty() && b.Terminated.IsEmpty() && b.DI == nil)
}

// ParseOptions controls how a lock file is reduced to a Manifest.
type ParseOptions struct {
	// VendorKey is the key under "extra" holding the metadata block.
	// Empty selects DefaultVendorKey.
	VendorKey string

	// IncludeDev appends the packages-dev list after packages.
	IncludeDev bool
}

// Key returns the vendor key, falling back to DefaultVendorKey.
func (o ParseOptions) Key() string {
	if o.VendorKey == "" {
		return DefaultVendorKey
	}
	return o.VendorKey
}
