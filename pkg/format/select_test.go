package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/mybatis-tools/mapperfmt/pkg/format"
)

func TestAliasAlignment(t *testing.T) {
	got := Document(Defaults, `SELECT id, user_name AS name, x AS y FROM t`)

	require.Equal(t, trimDoc(`
SELECT
    id,
    user_name AS name,
    x         AS y
FROM
    t
`), got)
}

func TestAliasAlignmentSingleColumn(t *testing.T) {
	got := Document(Defaults, `SELECT o.total AS amount FROM orders o`)

	require.Equal(t, trimDoc(`
SELECT
    o.total AS amount
FROM
    orders o
`), got)
}

func TestAliasInsideParensIsNotAnAlias(t *testing.T) {
	got := Document(Defaults, `SELECT CAST(a AS CHAR) FROM t`)

	require.Equal(t, trimDoc(`
SELECT
    CAST (a AS CHAR)
FROM
    t
`), got)
}

func TestLastAliasWins(t *testing.T) {
	got := Document(Defaults, `SELECT (a AS b) AS c FROM t`)

	require.Equal(t, trimDoc(`
SELECT
    (a AS b) AS c
FROM
    t
`), got)
}

func TestAlignmentDotSpacing(t *testing.T) {
	got := Document(Defaults, `SELECT u . name AS n, u.id FROM users u`)

	require.Equal(t, trimDoc(`
SELECT
    u.name AS n,
    u.id
FROM
    users u
`), got)
}

func TestAlignmentFallsBackOnMarkup(t *testing.T) {
	// A tag inside the column list cannot be aligned, so the clause takes
	// the plain rendering and the tag its XML indentation.
	got := Document(Defaults, `SELECT a, <include refid="x"/> FROM t`)

	require.Equal(t, trimDoc(`
SELECT
    a,
<include refid="x"/>
FROM
    t
`), got)
}

func TestAlignmentSkipsEmptyColumns(t *testing.T) {
	got := Document(Defaults, `SELECT , a FROM t`)

	require.Equal(t, trimDoc(`
SELECT
    a
FROM
    t
`), got)
}

func TestAlignmentDisabled(t *testing.T) {
	opts := Defaults
	opts.AlignAliases = false
	got := Document(opts, `SELECT a AS x, b FROM t`)

	require.Equal(t, trimDoc(`
SELECT
    a AS x,
    b
FROM
    t
`), got)
}

func TestAlignmentStopsAtSubqueryClose(t *testing.T) {
	got := Document(Defaults, `SELECT id FROM t WHERE uid IN (SELECT a AS x, bb AS y FROM u)`)

	require.Equal(t, trimDoc(`
SELECT
    id
FROM
    t
WHERE
    uid IN (
        SELECT
            a  AS x,
            bb AS y
        FROM
            u
    )
`), got)
}
