package spaserve

import (
	"path"
	"path/filepath"
	"strings"
)

// relPath returns a sanitized relative path for a file request. It rejects
// traversal and absolute-path tricks so serving cannot escape the root.
func relPath(rel string) (string, bool) {
	if rel == "" {
		return "", false
	}

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, "\\") {
		return "", false
	}

	// After prefix stripping, a leading "/" indicates an absolute-path attempt
	// (e.g. "/app//etc/passwd" => "/etc/passwd").
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning so traversal is not cleaned away.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == "" || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}

// normalizeBase turns a base path into a "/"-delimited prefix ("/app/").
func normalizeBase(base string) string {
	if base == "" || base == "/" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// stripBase removes prefix from urlPath. The prefix without its trailing
// slash maps to the root. ok is false when urlPath is outside prefix.
func stripBase(prefix, urlPath string) (rel string, ok bool) {
	if prefix == "/" {
		return strings.TrimPrefix(urlPath, "/"), true
	}
	if urlPath == strings.TrimSuffix(prefix, "/") {
		return "", true
	}
	if !strings.HasPrefix(urlPath, prefix) {
		return "", false
	}
	return strings.TrimPrefix(urlPath, prefix), true
}

// isAsset reports whether a request path names a file by extension.
// Extensionless paths are client routes.
func isAsset(rel string) bool {
	return path.Ext(path.Base(rel)) != ""
}

// isFingerprinted checks if a file path appears to be fingerprinted, e.g.
// "app.a1b2c3d4.css".
func isFingerprinted(filePath string) bool {
	base := path.Base(filePath)

	parts := strings.Split(base, ".")
	if len(parts) < 3 {
		return false
	}

	// Hashes are typically 8+ hex characters.
	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}

	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}

	return true
}
