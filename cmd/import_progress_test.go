package cmd

import (
	"errors"
	"testing"

	"github.com/bnema/tamago/internal/adapters/catalog"
	"github.com/bnema/tamago/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestImportModelCountsProgress(t *testing.T) {
	t.Parallel()

	m := newImportModel(3, nil)
	updated, cmd := m.Update(importProgressMsg{defined: 1})
	assert.Nil(t, cmd)
	assert.Contains(t, updated.View(), "importing assets 1/3")

	updated, cmd = updated.Update(importDoneMsg{report: catalog.Report{
		Defined:  []domain.AssetID{1, 3},
		Existing: []domain.AssetID{2},
	}})
	assert.NotNil(t, cmd)
	assert.Contains(t, updated.View(), "imported 2 of 3 assets, 1 already defined")
}

func TestImportModelReportsStop(t *testing.T) {
	t.Parallel()

	m := newImportModel(4, nil)
	updated, _ := m.Update(importDoneMsg{
		report: catalog.Report{Defined: []domain.AssetID{1}},
		err:    errors.New("not authorized"),
	})

	assert.Contains(t, updated.View(), "import stopped after 1 of 4 assets")
}
