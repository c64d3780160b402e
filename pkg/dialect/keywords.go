package dialect

// ansiKeywords is the core vocabulary shared by every dialect. The layout
// rules in pkg/format key off a fixed subset of these (SELECT, FROM, WHERE,
// and friends), so the core set must stay present regardless of engine.
var ansiKeywords = []string{
	"ALL", "ALTER", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CHECK",
	"COLUMN", "CONSTRAINT", "CREATE", "CROSS", "DEFAULT", "DELETE", "DESC",
	"DISTINCT", "DROP", "ELSE", "END", "ESCAPE", "EXCEPT", "EXISTS", "FETCH",
	"FOR", "FOREIGN", "FROM", "FULL", "GRANT", "GROUP", "HAVING", "IN",
	"INDEX", "INNER", "INSERT", "INTERSECT", "INTO", "IS", "JOIN", "KEY",
	"LEFT", "LIKE", "LIMIT", "NOT", "NULL", "OFFSET", "ON", "OR", "ORDER",
	"OUTER", "PRIMARY", "REFERENCES", "REVOKE", "RIGHT", "SELECT", "SET",
	"TABLE", "THEN", "UNION", "UNIQUE", "UPDATE", "USING", "VALUES", "VIEW",
	"WHEN", "WHERE", "WITH",
}

// commonFunctions are builtins present in effectively every engine.
var commonFunctions = []string{
	"ABS", "AVG", "CAST", "CEIL", "CHAR_LENGTH", "COALESCE", "CONCAT",
	"COUNT", "FLOOR", "LENGTH", "LOWER", "LTRIM", "MAX", "MIN", "MOD",
	"NULLIF", "POWER", "REPLACE", "ROUND", "RTRIM", "SQRT", "SUBSTRING",
	"SUM", "TRIM", "UPPER",
}

var mysqlKeywords = []string{
	"AUTO_INCREMENT", "BINARY", "CHANGE", "DATABASE", "DATABASES", "DIV",
	"DUAL", "ENGINE", "FORCE", "IGNORE", "INTERVAL", "LOCK", "LOW_PRIORITY",
	"MODIFY", "PARTITION", "REGEXP", "RENAME", "REPLACE", "RLIKE", "SHOW",
	"STRAIGHT_JOIN", "TRUNCATE", "UNLOCK", "XOR",
}

var mysqlFunctions = []string{
	"CURDATE", "CURTIME", "DATE_ADD", "DATE_FORMAT", "DATE_SUB", "DATEDIFF",
	"FROM_UNIXTIME", "GROUP_CONCAT", "IF", "IFNULL", "INSTR",
	"LAST_INSERT_ID", "LOCATE", "LPAD", "NOW", "RAND", "RPAD", "STR_TO_DATE",
	"UNIX_TIMESTAMP", "UUID",
}

var mariadbKeywords = append([]string{"RETURNING"}, mysqlKeywords...)

var postgresKeywords = []string{
	"ARRAY", "CONCURRENTLY", "CONFLICT", "DO", "ILIKE", "LATERAL",
	"MATERIALIZED", "NOTHING", "ONLY", "OVER", "PARTITION", "RETURNING",
	"SCHEMA", "SIMILAR", "TABLESPACE", "WINDOW",
}

var postgresFunctions = []string{
	"AGE", "ARRAY_AGG", "DATE_PART", "DATE_TRUNC", "GENERATE_SERIES",
	"JSONB_AGG", "NOW", "ROW_NUMBER", "STRING_AGG", "TO_CHAR", "TO_DATE",
	"TO_NUMBER", "TO_TIMESTAMP", "UNNEST",
}

var oracleKeywords = []string{
	"CONNECT", "DUAL", "MERGE", "MINUS", "NOCYCLE", "PRIOR", "ROWID",
	"ROWNUM", "SEQUENCE", "START", "SYNONYM", "SYSDATE",
}

var oracleFunctions = []string{
	"ADD_MONTHS", "DECODE", "INSTR", "LAST_DAY", "LISTAGG", "LPAD",
	"MONTHS_BETWEEN", "NVL", "NVL2", "REGEXP_SUBSTR", "RPAD", "TO_CHAR",
	"TO_DATE", "TO_NUMBER", "TRUNC",
}

var sqlserverKeywords = []string{
	"APPLY", "CLUSTERED", "IDENTITY", "MERGE", "NOLOCK", "NONCLUSTERED",
	"OUTPUT", "OVER", "PERCENT", "PIVOT", "ROWCOUNT", "TOP", "UNPIVOT",
}

var sqlserverFunctions = []string{
	"CHARINDEX", "CONVERT", "DATEADD", "DATEDIFF", "DATENAME", "DATEPART",
	"GETDATE", "GETUTCDATE", "IIF", "ISNULL", "LEN", "NEWID", "PATINDEX",
	"STUFF",
}

var sqliteKeywords = []string{
	"AUTOINCREMENT", "GLOB", "INDEXED", "PRAGMA", "RAISE", "REINDEX",
	"ROWID", "VACUUM", "WITHOUT",
}

var sqliteFunctions = []string{
	"CHANGES", "DATE", "DATETIME", "GROUP_CONCAT", "HEX", "IFNULL", "INSTR",
	"JULIANDAY", "LAST_INSERT_ROWID", "PRINTF", "QUOTE", "RANDOM",
	"STRFTIME", "TIME", "TOTAL",
}

var h2Keywords = []string{
	"CALL", "CURRVAL", "IDENTITY", "ILIKE", "MINUS", "NEXTVAL", "QUALIFY",
	"REGEXP", "ROWNUM", "TOP",
}

var h2Functions = []string{
	"CASEWHEN", "DECODE", "GROUP_CONCAT", "IFNULL", "NVL", "RAND",
	"REGEXP_REPLACE",
}

var db2Keywords = []string{
	"ALIAS", "CONNECT", "EXPLAIN", "FINAL", "ISOLATION", "OPTIMIZE",
}

var db2Functions = []string{
	"CHAR", "DATE", "DAY", "DAYS", "DECIMAL", "DIGITS", "HOUR", "MINUTE",
	"MONTH", "SECOND", "TIMESTAMP", "VALUE", "VARCHAR", "YEAR",
}
