package slquickemu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipIfNoQemuImg skips the test if qemu-img is not available.
func skipIfNoQemuImg(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	path, err := LocateQemuImg("")
	if err != nil {
		t.Skipf("qemu-img not found: %v", err)
	}
	return path
}

func TestIntegrationQemuImgCreate(t *testing.T) {
	bin := skipIfNoQemuImg(t)

	path := filepath.Join(t.TempDir(), "disk.qcow2")
	q := &QemuImg{Path: bin}
	require.NoError(t, q.Create(path, "64M"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	magic := make([]byte, 4)
	_, err = f.Read(magic)
	require.NoError(t, err)
	assert.Equal(t, []byte("QFI\xfb"), magic, "qcow2 header")
}

func TestIntegrationResolveAndBuild(t *testing.T) {
	bin := skipIfNoQemuImg(t)

	dir := t.TempDir()
	disk := filepath.Join(dir, "disk.qcow2")
	iso := filepath.Join(dir, "install.iso")
	require.NoError(t, os.WriteFile(iso, []byte("not really an iso"), 0644))

	overlays := filepath.Join(dir, "overlays")
	require.NoError(t, os.Mkdir(overlays, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(overlays, "defaults.toml"), []byte(`
[defaults]
spice = false
audio = "none"
disk = "64M"
`), 0644))

	vm := filepath.Join(dir, "it.toml")
	require.NoError(t, os.WriteFile(vm, []byte(
		"disk_img = \""+disk+"\"\n"+
			"iso = \""+iso+"\"\n"+
			"disk_interface = \"ide\"\n"+
			"qemu_img_path = \""+bin+"\"\n"), 0644))

	cfg, err := (&Resolver{OverlayDir: overlays}).Resolve(vm)
	require.NoError(t, err)

	b := NewBuilder(cfg)
	b.StrictImages = true
	fragments, err := b.Build()
	require.NoError(t, err)
	assert.FileExists(t, disk)

	joined := strings.Join(fragments, " ")
	assert.Contains(t, joined, `file="`+disk+`" -device virtio-blk-pci,drive=drive0,scsi=off`)
	assert.Contains(t, joined, "-drive media=cdrom,index=1,")
	assert.NotContains(t, joined, "-spice")
	assert.NotContains(t, joined, "-audiodev")

	argv, err := NewInvocation(cfg, fragments, nil).Argv()
	require.NoError(t, err)
	assert.Contains(t, argv, "-name")
}
