package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name   string
		source Snapshot
		target Snapshot
		exp    Plan
	}{
		{
			name: "BothEmpty",
		},
		{
			name: "NewFile",
			source: Snapshot{
				Files: []File{{Path: "a.txt", Size: 10}},
			},
			exp: Plan{CopyFiles: []string{"a.txt"}},
		},
		{
			name: "SizeChanged",
			source: Snapshot{
				Files: []File{{Path: "a.txt", Size: 10}},
			},
			target: Snapshot{
				Files: []File{{Path: "a.txt", Size: 20}},
			},
			exp: Plan{CopyFiles: []string{"a.txt"}},
		},
		{
			name: "SizeUnchanged",
			source: Snapshot{
				Files: []File{{Path: "a.txt", Size: 10}},
			},
			target: Snapshot{
				Files: []File{{Path: "a.txt", Size: 10}},
			},
		},
		{
			name: "RemovedFile",
			target: Snapshot{
				Files: []File{{Path: "old.txt", Size: 5}},
			},
			exp: Plan{RemoveFiles: []string{"old.txt"}},
		},
		{
			name: "NewDirectoryWithFile",
			source: Snapshot{
				Directories: []Directory{{Path: "sub"}},
				Files:       []File{{Path: "sub/a.txt", Size: 1}},
			},
			exp: Plan{
				CreateDirectories: []string{"sub"},
				CopyFiles:         []string{"sub/a.txt"},
			},
		},
		{
			name: "RemovedDirectory",
			target: Snapshot{
				Directories: []Directory{{Path: "gone"}},
			},
			exp: Plan{RemoveDirectories: []string{"gone"}},
		},
		{
			name: "Mixture",
			source: Snapshot{
				Directories: []Directory{{Path: "src"}, {Path: "src/lib"}},
				Files: []File{
					{Path: "src/main.go", Size: 100},
					{Path: "src/lib/util.go", Size: 50},
					{Path: "README.md", Size: 10},
				},
			},
			target: Snapshot{
				Directories: []Directory{{Path: "src"}, {Path: "build"}},
				Files: []File{
					{Path: "src/main.go", Size: 90},
					{Path: "README.md", Size: 10},
					{Path: "build/out.bin", Size: 4096},
				},
			},
			exp: Plan{
				RemoveFiles:       []string{"build/out.bin"},
				RemoveDirectories: []string{"build"},
				CreateDirectories: []string{"src/lib"},
				CopyFiles:         []string{"src/lib/util.go", "src/main.go"},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, Reconcile(test.source, test.target))
		})
	}
}

func TestReconcileDirectoryOrdering(t *testing.T) {
	// Input deliberately shuffled. The plan must come out ancestor-first.
	source := Snapshot{
		Directories: []Directory{
			{Path: "a/b/c"},
			{Path: "a"},
			{Path: "a/b"},
			{Path: "a-sibling"},
		},
	}
	target := Snapshot{
		Directories: []Directory{
			{Path: "z/y"},
			{Path: "z"},
		},
	}

	plan := Reconcile(source, target)
	assert.Equal(t, []string{"a", "a/b", "a/b/c", "a-sibling"}, plan.CreateDirectories)
	assert.Equal(t, []string{"z", "z/y"}, plan.RemoveDirectories)
}

func TestReconcileIsDeterministic(t *testing.T) {
	source := Snapshot{
		Directories: []Directory{{Path: "b"}, {Path: "a"}},
		Files:       []File{{Path: "b/x", Size: 1}, {Path: "a/x", Size: 2}},
	}
	target := Snapshot{
		Files: []File{{Path: "c", Size: 3}},
	}

	first := Reconcile(source, target)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Reconcile(source, target))
	}
}

func TestReconcileEqualTreesIsEmpty(t *testing.T) {
	snapshot := Snapshot{
		Directories: []Directory{{Path: "src"}, {Path: "src/lib"}},
		Files: []File{
			{Path: "src/main.go", Size: 100},
			{Path: "src/lib/util.go", Size: 50},
		},
	}

	assert.True(t, Reconcile(snapshot, snapshot).Empty())
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	source := Snapshot{
		Directories: []Directory{{Path: "b"}, {Path: "a"}},
		Files:       []File{{Path: "z", Size: 1}, {Path: "a/x", Size: 2}},
	}
	target := Snapshot{
		Directories: []Directory{{Path: "d"}, {Path: "c"}},
	}

	Reconcile(source, target)
	assert.Equal(t, []Directory{{Path: "b"}, {Path: "a"}}, source.Directories)
	assert.Equal(t, []File{{Path: "z", Size: 1}, {Path: "a/x", Size: 2}}, source.Files)
	assert.Equal(t, []Directory{{Path: "d"}, {Path: "c"}}, target.Directories)
}

func TestDescribe(t *testing.T) {
	plan := Plan{
		RemoveFiles:       []string{"old.txt"},
		RemoveDirectories: []string{"gone"},
		CreateDirectories: []string{"sub"},
		CopyFiles:         []string{"sub/a.txt"},
	}

	exp := []string{
		"remove file: host:proj/old.txt",
		"remove directory: host:proj/gone",
		"create directory: host:proj/sub",
		"copy file: /code/sub/a.txt -> host:proj/sub/a.txt",
	}
	assert.Equal(t, exp, plan.Describe("/code", "host:proj"))
}
