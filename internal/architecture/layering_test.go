package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePrefix = "partshub/internal/modules/"

// Modules talk to each other only through port/in and dto. Inside a
// module, inner layers must not reach outward (domain stays pure,
// services never see adapters).
func TestModuleLayering(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module, layer := classify(slash)
		if module == "" || layer == "" {
			return nil
		}
		file, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range file.Imports {
			target := strings.Trim(imp.Path.Value, `"`)
			if !strings.Contains(target, modulePrefix) {
				continue
			}
			if !allowed(module, layer, target) {
				t.Errorf("forbidden import in %s (%s): %s", slash, layer, target)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
}

var layers = []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"}

func classify(path string) (module, layer string) {
	parts := strings.Split(path, "/")
	for i := range parts {
		if parts[i] == "modules" && i+1 < len(parts) {
			module = parts[i+1]
			break
		}
	}
	for _, l := range layers {
		if strings.Contains(path, "/"+l+"/") {
			layer = l
			break
		}
	}
	return module, layer
}

func publicSurface(importPath string) bool {
	return strings.Contains(importPath, "/port/in/") ||
		strings.HasSuffix(importPath, "/port/in") ||
		strings.Contains(importPath, "/dto/") ||
		strings.HasSuffix(importPath, "/dto")
}

func allowed(module, layer, importPath string) bool {
	if !strings.Contains(importPath, "/internal/modules/"+module+"/") {
		// Cross-module: only the public surface is reachable.
		return publicSurface(importPath)
	}
	switch layer {
	case "adapter/in":
		return publicSurface(importPath)
	case "usecase":
		return !strings.Contains(importPath, "/adapter/")
	case "service":
		return !strings.Contains(importPath, "/adapter/") && !strings.Contains(importPath, "/usecase/")
	case "domain":
		return !strings.Contains(importPath, "/adapter/") &&
			!strings.Contains(importPath, "/usecase/") &&
			!strings.Contains(importPath, "/service/")
	default:
		return true
	}
}
