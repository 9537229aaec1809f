// SPDX-License-Identifier: MIT

// Package level loads puzzle levels from YAML catalogues.
//
// Schema:
//
//	levels:
//	  - id: konigsberg
//	    name: The Seven Bridges of Königsberg
//	    description: optional blurb
//	    nodes:
//	      - {id: A, label: Kneiphof, x: 0.5, y: 0.5}
//	    edges:
//	      - {id: a, from: A, to: B}
//
// A level may instead be drawn: a map: block in the gridgraph legend
// replaces nodes and edges, and labels: names the islands.
//
//	levels:
//	  - id: town
//	    name: Königsberg from Above
//	    map: |
//	      BBBBBBBB
//	      .|..|...
//	      AAAAAAAA
//	    labels: {A: Kneiphof}
//
// Parse decodes strictly (unknown keys are errors), validates field rules
// with go-playground/validator and then builds every level once, so a
// catalogue that parses is guaranteed to yield graphs: bridges reference
// existing land masses, IDs are unique and self-loops appear only in
// levels that set loops: true.
//
// Classic returns the built-in catalogue, Königsberg included.
package level
