package entities

import (
	"sort"
	"strings"
	"sync"
)

// defaultBinarySuffixes lists filename suffixes (and a few exact file names)
// whose content is never exported.
//
//nolint:gochecknoglobals // read-only table, exposed only through BinaryExtensionSet
var defaultBinarySuffixes = []string{
	// compiled executables and libraries
	".exe", ".dll", ".so", ".a", ".lib", ".dylib", ".o", ".obj",
	// compressed archives
	".zip", ".tar", ".tar.gz", ".tgz", ".rar", ".7z", ".bz2", ".gz", ".xz", ".z",
	".lz", ".lzma", ".lzo", ".rz", ".sz", ".dz",
	// office documents
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".odt", ".ods", ".odp",
	// media
	".png", ".jpg", ".jpeg", ".gif", ".mp3", ".mp4", ".wav", ".flac", ".ogg", ".avi",
	".mkv", ".mov", ".webm", ".wmv", ".m4a", ".aac",
	// virtual machine and container images
	".iso", ".vmdk", ".qcow2", ".vdi", ".vhd", ".vhdx", ".ova", ".ovf",
	// databases
	".db", ".sqlite", ".mdb", ".accdb", ".frm", ".ibd", ".dbf",
	// JVM
	".jar", ".class", ".war", ".ear", ".jpi",
	// Python bytecode and packages
	".pyc", ".pyo", ".pyd", ".egg", ".whl",
	// packages, dumps and misc
	".deb", ".rpm", ".apk", ".msi", ".dmg", ".pkg", ".bin", ".dat", ".data",
	".dump", ".img", ".toast", ".vcd", ".crx", ".xpi", ".lockb", "package-lock.json", ".svg",
	".eot", ".otf", ".ttf", ".woff", ".woff2",
	".ico", ".icns", ".cur",
	".cab", ".dmp", ".msp", ".msm",
	// certificates and keys
	".keystore", ".jks", ".truststore", ".cer", ".crt", ".der", ".p7b", ".p7c", ".p12",
	".pfx", ".pem", ".csr",
	".key", ".pub", ".sig", ".pgp", ".gpg",
	".nupkg", ".snupkg", ".appx", ".msix", ".msu",
	".snap", ".flatpak", ".appimage",
	".ko", ".sys", ".elf",
	".swf", ".fla", ".swc",
	".rlib", ".pdb", ".idb", ".dbg",
	// build leftovers and logs
	".sdf", ".bak", ".tmp", ".temp", ".log", ".tlog", ".ilk",
	".bpl", ".dcu", ".dcp", ".dcpil", ".drc",
	".aps", ".res", ".rsrc", ".rc", ".resx",
	// settings files
	".prefs", ".properties", ".ini", ".cfg", ".config", ".conf",
	// editor and VCS metadata
	".DS_Store", ".localized", ".svn", ".git", ".gitignore", ".gitkeep",
}

// BinaryExtensionSet classifies files as binary by case-sensitive suffix.
// The zero value matches nothing. A set is never mutated after construction.
type BinaryExtensionSet struct {
	suffixes []string
}

// NewBinaryExtensionSet builds a set from the given suffixes, dropping
// duplicates and empty strings.
func NewBinaryExtensionSet(suffixes ...string) *BinaryExtensionSet {
	seen := make(map[string]struct{}, len(suffixes))
	unique := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}
	sort.Strings(unique)
	return &BinaryExtensionSet{suffixes: unique}
}

//nolint:gochecknoglobals // built once per process
var (
	defaultBinarySetOnce sync.Once
	defaultBinarySet     *BinaryExtensionSet
)

// DefaultBinaryExtensions returns the process-wide default set.
func DefaultBinaryExtensions() *BinaryExtensionSet {
	defaultBinarySetOnce.Do(func() {
		defaultBinarySet = NewBinaryExtensionSet(defaultBinarySuffixes...)
	})
	return defaultBinarySet
}

// Matches reports whether name ends with any suffix in the set.
func (s *BinaryExtensionSet) Matches(name string) bool {
	if s == nil {
		return false
	}
	for _, suffix := range s.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct suffixes.
func (s *BinaryExtensionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.suffixes)
}
