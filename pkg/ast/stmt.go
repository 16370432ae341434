package ast

import (
	"fmt"
	"strings"
)

// ---------- DML ----------

// Insert is INSERT [INTO] table [(columns)] <source>, where the source is
// a VALUES body or a query.
type Insert struct {
	Table     ObjectName
	Columns   []Ident
	Source    *Query
	Overwrite bool
}

func (*Insert) stmtNode() {}

func (s *Insert) String() string {
	var sb strings.Builder
	if s.Overwrite {
		sb.WriteString("INSERT OVERWRITE TABLE ")
	} else {
		sb.WriteString("INSERT INTO ")
	}
	sb.WriteString(s.Table.String())
	if len(s.Columns) > 0 {
		sb.WriteString(" (")
		sb.WriteString(commaSeparated(s.Columns))
		sb.WriteByte(')')
	}
	sb.WriteByte(' ')
	sb.WriteString(s.Source.String())
	return sb.String()
}

// Assignment is one SET item in UPDATE: target = value.
type Assignment struct {
	Target ObjectName
	Value  Expr
}

func (a Assignment) String() string {
	return a.Target.String() + " = " + a.Value.String()
}

// Update is UPDATE table SET assignments [WHERE predicate].
type Update struct {
	Table       ObjectName
	Assignments []Assignment
	Selection   Expr
}

func (*Update) stmtNode() {}

func (s *Update) String() string {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(s.Table.String())
	sb.WriteString(" SET ")
	for i, a := range s.Assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	if s.Selection != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(s.Selection.String())
	}
	return sb.String()
}

// Delete is DELETE FROM table [WHERE predicate].
type Delete struct {
	Table     ObjectName
	Selection Expr
}

func (*Delete) stmtNode() {}

func (s *Delete) String() string {
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(s.Table.String())
	if s.Selection != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(s.Selection.String())
	}
	return sb.String()
}

// MergeClauseKind identifies the WHEN branch of a MERGE.
type MergeClauseKind int

// MERGE clause kinds.
const (
	MergeMatchedUpdate MergeClauseKind = iota
	MergeMatchedDelete
	MergeNotMatchedInsert
)

// MergeClause is one WHEN [NOT] MATCHED [AND predicate] THEN action.
type MergeClause struct {
	Kind        MergeClauseKind
	Predicate   Expr
	Assignments []Assignment // update action
	Columns     []Ident      // insert action
	Values      []Expr       // insert action
}

func (c MergeClause) String() string {
	var sb strings.Builder
	switch c.Kind {
	case MergeNotMatchedInsert:
		sb.WriteString("WHEN NOT MATCHED")
	default:
		sb.WriteString("WHEN MATCHED")
	}
	if c.Predicate != nil {
		sb.WriteString(" AND ")
		sb.WriteString(c.Predicate.String())
	}
	sb.WriteString(" THEN ")
	switch c.Kind {
	case MergeMatchedUpdate:
		sb.WriteString("UPDATE SET ")
		for i, a := range c.Assignments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
	case MergeMatchedDelete:
		sb.WriteString("DELETE")
	case MergeNotMatchedInsert:
		sb.WriteString("INSERT")
		if len(c.Columns) > 0 {
			sb.WriteString(" (")
			sb.WriteString(commaSeparated(c.Columns))
			sb.WriteByte(')')
		}
		sb.WriteString(" VALUES (")
		sb.WriteString(commaSeparated(c.Values))
		sb.WriteByte(')')
	}
	return sb.String()
}

// Merge is MERGE INTO target USING source ON predicate <clauses>.
type Merge struct {
	Table   TableFactor
	Source  TableFactor
	On      Expr
	Clauses []MergeClause
}

func (*Merge) stmtNode() {}

func (s *Merge) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MERGE INTO %s USING %s ON %s", s.Table, s.Source, s.On)
	for _, c := range s.Clauses {
		sb.WriteByte(' ')
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Copy is the Postgres COPY table [(columns)] FROM|TO STDIN|'target' form.
type Copy struct {
	Table   ObjectName
	Columns []Ident
	To      bool
	// Target is nil for STDIN/STDOUT, else a string Value naming the file.
	Target Expr
}

func (*Copy) stmtNode() {}

func (s *Copy) String() string {
	var sb strings.Builder
	sb.WriteString("COPY ")
	sb.WriteString(s.Table.String())
	if len(s.Columns) > 0 {
		sb.WriteString(" (")
		sb.WriteString(commaSeparated(s.Columns))
		sb.WriteByte(')')
	}
	if s.To {
		sb.WriteString(" TO ")
		if s.Target == nil {
			sb.WriteString("STDOUT")
		} else {
			sb.WriteString(s.Target.String())
		}
	} else {
		sb.WriteString(" FROM ")
		if s.Target == nil {
			sb.WriteString("STDIN")
		} else {
			sb.WriteString(s.Target.String())
		}
	}
	return sb.String()
}

// ---------- DDL ----------

// SQLOption is a generic name = value pair used by WITH (...) clauses.
type SQLOption struct {
	Name  Ident
	Value Expr
}

func (o SQLOption) String() string {
	return o.Name.String() + " = " + o.Value.String()
}

// CreateTable is CREATE [OR REPLACE] [EXTERNAL] TABLE.
type CreateTable struct {
	OrReplace   bool
	Temporary   bool
	External    bool
	IfNotExists bool
	Name        ObjectName
	Columns     []ColumnDef
	Constraints []TableConstraint
	Options     []SQLOption
	Query       *Query
	Like        *ObjectName
}

func (*CreateTable) stmtNode() {}

func (s *CreateTable) String() string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	if s.OrReplace {
		sb.WriteString("OR REPLACE ")
	}
	if s.Temporary {
		sb.WriteString("TEMPORARY ")
	}
	if s.External {
		sb.WriteString("EXTERNAL ")
	}
	sb.WriteString("TABLE ")
	if s.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(s.Name.String())
	if s.Like != nil {
		sb.WriteString(" LIKE ")
		sb.WriteString(s.Like.String())
	}
	if len(s.Columns) > 0 || len(s.Constraints) > 0 {
		sb.WriteString(" (")
		for i, col := range s.Columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(col.String())
		}
		for i, con := range s.Constraints {
			if i > 0 || len(s.Columns) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(con.String())
		}
		sb.WriteByte(')')
	}
	if len(s.Options) > 0 {
		sb.WriteString(" WITH (")
		for i, o := range s.Options {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.String())
		}
		sb.WriteByte(')')
	}
	if s.Query != nil {
		sb.WriteString(" AS ")
		sb.WriteString(s.Query.String())
	}
	return sb.String()
}

// CreateView is CREATE [OR REPLACE] [MATERIALIZED] VIEW name AS query.
type CreateView struct {
	OrReplace    bool
	Materialized bool
	Name         ObjectName
	Columns      []Ident
	Query        *Query
}

func (*CreateView) stmtNode() {}

func (s *CreateView) String() string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	if s.OrReplace {
		sb.WriteString("OR REPLACE ")
	}
	if s.Materialized {
		sb.WriteString("MATERIALIZED ")
	}
	sb.WriteString("VIEW ")
	sb.WriteString(s.Name.String())
	if len(s.Columns) > 0 {
		sb.WriteString(" (")
		sb.WriteString(commaSeparated(s.Columns))
		sb.WriteByte(')')
	}
	sb.WriteString(" AS ")
	sb.WriteString(s.Query.String())
	return sb.String()
}

// CreateIndex is CREATE [UNIQUE] INDEX [IF NOT EXISTS] name ON table (cols).
type CreateIndex struct {
	Name        ObjectName
	Table       ObjectName
	Columns     []OrderByExpr
	Unique      bool
	IfNotExists bool
}

func (*CreateIndex) stmtNode() {}

func (s *CreateIndex) String() string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	if s.Unique {
		sb.WriteString("UNIQUE ")
	}
	sb.WriteString("INDEX ")
	if s.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	fmt.Fprintf(&sb, "%s ON %s(%s)", s.Name, s.Table, commaSeparatedOrderBy(s.Columns))
	return sb.String()
}

// CreateSchema is CREATE SCHEMA [IF NOT EXISTS] name.
type CreateSchema struct {
	Name        ObjectName
	IfNotExists bool
}

func (*CreateSchema) stmtNode() {}

func (s *CreateSchema) String() string {
	if s.IfNotExists {
		return "CREATE SCHEMA IF NOT EXISTS " + s.Name.String()
	}
	return "CREATE SCHEMA " + s.Name.String()
}

// AlterTable is ALTER TABLE name <operation>.
type AlterTable struct {
	Name ObjectName
	Op   AlterTableOperation
}

func (*AlterTable) stmtNode() {}

func (s *AlterTable) String() string {
	return fmt.Sprintf("ALTER TABLE %s %s", s.Name, s.Op)
}

// ObjectType identifies the object kind in DROP.
type ObjectType int

// Droppable object kinds.
const (
	ObjectTable ObjectType = iota
	ObjectView
	ObjectIndex
	ObjectSchema
)

func (t ObjectType) String() string {
	switch t {
	case ObjectView:
		return "VIEW"
	case ObjectIndex:
		return "INDEX"
	case ObjectSchema:
		return "SCHEMA"
	default:
		return "TABLE"
	}
}

// Drop is DROP <kind> [IF EXISTS] names [CASCADE | RESTRICT].
type Drop struct {
	ObjectType ObjectType
	IfExists   bool
	Names      []ObjectName
	Cascade    bool
	Restrict   bool
}

func (*Drop) stmtNode() {}

func (s *Drop) String() string {
	var sb strings.Builder
	sb.WriteString("DROP ")
	sb.WriteString(s.ObjectType.String())
	sb.WriteByte(' ')
	if s.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(commaSeparated(s.Names))
	if s.Cascade {
		sb.WriteString(" CASCADE")
	}
	if s.Restrict {
		sb.WriteString(" RESTRICT")
	}
	return sb.String()
}

// Truncate is TRUNCATE [TABLE] name.
type Truncate struct {
	Table ObjectName
}

func (*Truncate) stmtNode() {}

func (s *Truncate) String() string { return "TRUNCATE TABLE " + s.Table.String() }

// ---------- Session and misc ----------

// Explain is EXPLAIN [ANALYZE] [VERBOSE] <statement>.
type Explain struct {
	Analyze   bool
	Verbose   bool
	Statement Statement
}

func (*Explain) stmtNode() {}

func (s *Explain) String() string {
	var sb strings.Builder
	sb.WriteString("EXPLAIN ")
	if s.Analyze {
		sb.WriteString("ANALYZE ")
	}
	if s.Verbose {
		sb.WriteString("VERBOSE ")
	}
	sb.WriteString(s.Statement.String())
	return sb.String()
}

// SetVariable is SET <var> = <value> or SET <var> TO <value>.
type SetVariable struct {
	Name  ObjectName
	Value Expr
	Local bool
}

func (*SetVariable) stmtNode() {}

func (s *SetVariable) String() string {
	if s.Local {
		return fmt.Sprintf("SET LOCAL %s = %s", s.Name, s.Value)
	}
	return fmt.Sprintf("SET %s = %s", s.Name, s.Value)
}

// ShowVariable is SHOW <var>.
type ShowVariable struct {
	Name ObjectName
}

func (*ShowVariable) stmtNode() {}

func (s *ShowVariable) String() string { return "SHOW " + s.Name.String() }

// TransactionMode is one START TRANSACTION modifier.
type TransactionMode int

// Transaction modes.
const (
	TxnReadOnly TransactionMode = iota
	TxnReadWrite
)

func (m TransactionMode) String() string {
	if m == TxnReadWrite {
		return "READ WRITE"
	}
	return "READ ONLY"
}

// StartTransaction is START TRANSACTION / BEGIN with optional modes.
type StartTransaction struct {
	Modes []TransactionMode
}

func (*StartTransaction) stmtNode() {}

func (s *StartTransaction) String() string {
	if len(s.Modes) == 0 {
		return "START TRANSACTION"
	}
	parts := make([]string, len(s.Modes))
	for i, m := range s.Modes {
		parts[i] = m.String()
	}
	return "START TRANSACTION " + strings.Join(parts, ", ")
}

// Commit is COMMIT [AND CHAIN].
type Commit struct {
	Chain bool
}

func (*Commit) stmtNode() {}

func (s *Commit) String() string {
	if s.Chain {
		return "COMMIT AND CHAIN"
	}
	return "COMMIT"
}

// Rollback is ROLLBACK [AND CHAIN].
type Rollback struct {
	Chain bool
}

func (*Rollback) stmtNode() {}

func (s *Rollback) String() string {
	if s.Chain {
		return "ROLLBACK AND CHAIN"
	}
	return "ROLLBACK"
}

// Privilege is one GRANT privilege, optionally with a column list.
type Privilege struct {
	Name    string
	Columns []Ident
}

func (p Privilege) String() string {
	if len(p.Columns) > 0 {
		return p.Name + " (" + commaSeparated(p.Columns) + ")"
	}
	return p.Name
}

// Grant is GRANT privileges ON objects TO grantees [WITH GRANT OPTION].
type Grant struct {
	Privileges      []Privilege
	AllPrivileges   bool
	Objects         []ObjectName
	ObjectType      ObjectType
	Grantees        []Ident
	WithGrantOption bool
}

func (*Grant) stmtNode() {}

func (s *Grant) String() string {
	var sb strings.Builder
	sb.WriteString("GRANT ")
	if s.AllPrivileges {
		sb.WriteString("ALL PRIVILEGES")
	} else {
		for i, p := range s.Privileges {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.String())
		}
	}
	sb.WriteString(" ON ")
	if s.ObjectType != ObjectTable {
		sb.WriteString(s.ObjectType.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(commaSeparated(s.Objects))
	sb.WriteString(" TO ")
	sb.WriteString(commaSeparated(s.Grantees))
	if s.WithGrantOption {
		sb.WriteString(" WITH GRANT OPTION")
	}
	return sb.String()
}
