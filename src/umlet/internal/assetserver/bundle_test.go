package assetserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
)

func entityAssets(host, root, extensionPath string) entity.AssetsConfig {
	return entity.AssetsConfig{Host: host, Root: root, ExtensionPath: extensionPath}
}

func TestBundleDirectory(t *testing.T) {
	tests := []struct {
		name    string
		pom     string
		want    string
		wantErr bool
	}{
		{
			name: "artifact and parent version",
			pom: `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <parent>
    <groupId>com.umlet</groupId>
    <artifactId>umlet-parent</artifactId>
    <version>15.1.0</version>
  </parent>
  <artifactId>umlet-vscode</artifactId>
</project>`,
			want: filepath.Join("target", "umlet-vscode-15.1.0"),
		},
		{
			name:    "missing parent",
			pom:     `<project><artifactId>umlet-vscode</artifactId></project>`,
			wantErr: true,
		},
		{
			name:    "malformed",
			pom:     `<project>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, _pomFile), []byte(tt.pom), 0o644))

			got, err := BundleDirectory(dir)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.want), got)
		})
	}
}

func TestBundleDirectoryMissingPom(t *testing.T) {
	_, err := BundleDirectory(t.TempDir())
	assert.Error(t, err)
}
