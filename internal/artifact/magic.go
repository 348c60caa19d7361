package artifact

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"platstub/internal/domain"
)

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// Mach-O magics, both endiannesses, 32- and 64-bit, plus fat binaries.
var machoMagics = [][]byte{
	{0xfe, 0xed, 0xfa, 0xce},
	{0xce, 0xfa, 0xed, 0xfe},
	{0xfe, 0xed, 0xfa, 0xcf},
	{0xcf, 0xfa, 0xed, 0xfe},
	{0xca, 0xfe, 0xba, 0xbe},
}

// sharedLibExts are file extensions that suggest a native artifact even
// before sniffing. ".pyd" is a Windows Python extension DLL.
var sharedLibExts = map[string]bool{
	".so":    true,
	".dylib": true,
	".dll":   true,
	".pyd":   true,
}

// Sniff reads the first bytes of path and reports the binary container
// format. Files shorter than four bytes are FormatUnknown.
func Sniff(path string) (domain.ArtifactFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.FormatUnknown, err
	}
	defer f.Close()

	head := make([]byte, 4)
	if _, err := io.ReadFull(f, head); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return domain.FormatUnknown, nil
		}
		return domain.FormatUnknown, err
	}

	switch {
	case bytes.Equal(head, elfMagic):
		return domain.FormatELF, nil
	case head[0] == 'M' && head[1] == 'Z':
		return domain.FormatPE, nil
	}
	for _, m := range machoMagics {
		if bytes.Equal(head, m) {
			return domain.FormatMachO, nil
		}
	}
	return domain.FormatUnknown, nil
}

// IsNative reports whether format is a recognised compiled container.
func IsNative(format domain.ArtifactFormat) bool {
	return format == domain.FormatELF || format == domain.FormatMachO || format == domain.FormatPE
}

// HasSharedLibExt reports whether path carries a shared-library file
// extension. Versioned names like libfoo.so.1 are matched too.
func HasSharedLibExt(path string) bool {
	base := filepath.Base(path)
	if sharedLibExts[strings.ToLower(filepath.Ext(base))] {
		return true
	}
	return strings.Contains(strings.ToLower(base), ".so.")
}
