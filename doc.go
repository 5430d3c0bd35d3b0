// Package nbversion documents the nbversion command, a versioning helper
// for machine-learning notebooks that live in a git repository.
//
// nbversion saves "version N" of the latest notebook: it finds the newest
// versioned notebook file in the notebook directory, copies it under the
// next version's name (reusing whatever naming convention the file already
// follows), inserts a version banner cell at the top of the copy, then
// creates a branch, commit, and annotated tag for the version and pushes
// both when a remote is configured.
//
// # Quick Start
//
//	# Navigate to your Git repository
//	cd /path/to/your/repo
//
//	# Save version 3 with a short description
//	nbversion v3 "added dropout layer"
//
//	# Undo version 3 if something went wrong
//	nbversion --rollback v3
//
// # Key Features
//
//   - Convention Detection: Recognizes Model(v3).ipynb, Model_v3.ipynb,
//     ModelV3.ipynb, V3_Model.ipynb, v3_model.ipynb, and loose v3 markers
//   - Banner Insertion: Prepends a markdown cell recording the version,
//     description, and timestamp without disturbing the rest of the document
//   - Git Sequencing: One branch, commit, and annotated tag per version
//   - Uniform Recovery: Every failed git step offers retry, skip, rollback,
//     or continue; unattended runs roll back
//
// The implementation lives under internal/; cmd/nbversion is the
// executable entry point.
package nbversion
