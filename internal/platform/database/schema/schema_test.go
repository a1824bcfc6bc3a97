// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/platform/database/schema"
)

/*
TestColumns_MatchMigration guards against drift between the Go column names
and the initial migration.
*/
func TestColumns_MatchMigration(t *testing.T) {
	raw, err := os.ReadFile("../../migration/sql/000001_init.up.sql")
	require.NoError(t, err)
	ddl := string(raw)

	tables := map[string][]string{
		schema.ContentPost.Table: schema.ContentPost.Columns(),
		schema.ContentTag.Table:  schema.ContentTag.Columns(),
		schema.UserAccount.Table: schema.UserAccount.Columns(),
	}

	for table, columns := range tables {
		assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+table, table)
		for _, column := range columns {
			assert.True(t, strings.Contains(ddl, "    "+column+" "), "%s.%s missing from migration", table, column)
		}
	}
}
