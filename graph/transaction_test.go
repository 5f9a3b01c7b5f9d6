package graph

import (
	"testing"

	"github.com/cayleygraph/rdfstore/term"
)

func follows(s, o string) Statement {
	return Triple(term.IRI(s), term.IRI("follows"), term.IRI(o))
}

func TestTransaction(t *testing.T) {
	var tx *Transaction

	// simples adds / removes
	tx = NewTransaction()

	tx.AddStatement(follows("E", "F"))
	tx.AddStatement(follows("F", "G"))
	tx.RemoveStatement(follows("A", "Z"))
	if len(tx.Deltas) != 3 {
		t.Errorf("Expected 3 Deltas, have %d delta(s)", len(tx.Deltas))
	}

	// add, remove -> nothing
	tx = NewTransaction()
	tx.AddStatement(follows("E", "G"))
	tx.RemoveStatement(follows("E", "G"))
	if len(tx.Deltas) != 0 {
		t.Errorf("Expected [add, remove]->[], have %d Deltas", len(tx.Deltas))
	}

	// remove, add -> nothing
	tx = NewTransaction()
	tx.RemoveStatement(follows("E", "G"))
	tx.AddStatement(follows("E", "G"))
	if len(tx.Deltas) != 0 {
		t.Errorf("Expected [remove, add]->[], have %d delta(s)", len(tx.Deltas))
	}

	// add x2 -> add x1
	tx = NewTransaction()
	tx.AddStatement(follows("E", "G"))
	tx.AddStatement(follows("E", "G"))
	if len(tx.Deltas) != 1 {
		t.Errorf("Expected [add, add]->[add], have %d delta(s)", len(tx.Deltas))
	}

	// remove x2 -> remove x1
	tx = NewTransaction()
	tx.RemoveStatement(follows("E", "G"))
	tx.RemoveStatement(follows("E", "G"))
	if len(tx.Deltas) != 1 {
		t.Errorf("Expected [remove, remove]->[remove], have %d delta(s)", len(tx.Deltas))
	}

	// add, remove x2 -> remove x1
	tx = NewTransaction()
	tx.AddStatement(follows("E", "G"))
	tx.RemoveStatement(follows("E", "G"))
	tx.RemoveStatement(follows("E", "G"))
	if len(tx.Deltas) != 1 {
		t.Errorf("Expected [add, remove, remove]->[remove], have %d delta(s)", len(tx.Deltas))
	}
}

func TestTransactionLiteralsByValue(t *testing.T) {
	tx := NewTransaction()
	s := term.IRI("s")
	tx.AddStatement(Triple(s, "p", term.String("x")))
	tx.RemoveStatement(Triple(s, "p", term.NewTypedLiteral("x", term.XSDString)))
	if tx.Len() != 0 {
		t.Errorf("Expected plain and xsd:string literals to cancel out, have %d delta(s)", tx.Len())
	}
	tx.AddStatement(Triple(s, "p", term.NewLiteral("x", "en")))
	tx.RemoveStatement(Triple(s, "p", term.NewLiteral("x", "EN")))
	if tx.Len() != 2 {
		t.Errorf("Expected language tags to be compared verbatim, have %d delta(s)", tx.Len())
	}
}
