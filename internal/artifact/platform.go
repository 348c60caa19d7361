package artifact

import (
	"os"
	"runtime"

	"platstub/internal/domain"
)

// HostPlatform returns the tag for the running OS and architecture.
func HostPlatform() domain.PlatformTag {
	return Platform(runtime.GOOS, runtime.GOARCH)
}

// Platform builds a tag from an OS and architecture pair.
func Platform(goos, goarch string) domain.PlatformTag {
	return domain.PlatformTag(goos + "_" + goarch)
}

// SharedLibExt returns the shared-library suffix conventional on goos.
func SharedLibExt(goos string) string {
	switch goos {
	case "darwin":
		return ".dylib"
	case "windows":
		return ".dll"
	default:
		return ".so"
	}
}

// Inspect stats, sniffs and digests one file into an Artifact.
func Inspect(path string) (domain.Artifact, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return domain.Artifact{}, err
	}
	format, err := Sniff(path)
	if err != nil {
		return domain.Artifact{}, err
	}
	digest, err := DigestFile(path)
	if err != nil {
		return domain.Artifact{}, err
	}
	return domain.Artifact{
		Path:   path,
		Format: format,
		Size:   fi.Size(),
		Digest: digest,
	}, nil
}
