package ast

import (
	"fmt"
	"strings"
)

// ColumnDef is one column in CREATE TABLE: name, type, options.
type ColumnDef struct {
	Name     Ident
	DataType DataType
	Options  []ColumnOption
}

func (c ColumnDef) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name.String())
	sb.WriteByte(' ')
	sb.WriteString(c.DataType.String())
	for _, opt := range c.Options {
		sb.WriteByte(' ')
		sb.WriteString(opt.String())
	}
	return sb.String()
}

// ColumnOption is the marker interface for column-level options.
// Variants: NullOption, DefaultOption, UniqueOption, ForeignKeyOption,
// CheckOption, NamedOption.
type ColumnOption interface {
	Node
	columnOptionNode()
}

// NullOption is NULL or NOT NULL.
type NullOption struct {
	Null bool
}

func (NullOption) columnOptionNode() {}

func (o NullOption) String() string {
	if o.Null {
		return "NULL"
	}
	return "NOT NULL"
}

// DefaultOption is DEFAULT <expr>.
type DefaultOption struct {
	Expr Expr
}

func (DefaultOption) columnOptionNode() {}

func (o DefaultOption) String() string { return "DEFAULT " + o.Expr.String() }

// UniqueOption is UNIQUE or PRIMARY KEY.
type UniqueOption struct {
	IsPrimary bool
}

func (UniqueOption) columnOptionNode() {}

func (o UniqueOption) String() string {
	if o.IsPrimary {
		return "PRIMARY KEY"
	}
	return "UNIQUE"
}

// ForeignKeyOption is an inline REFERENCES clause.
type ForeignKeyOption struct {
	Table   ObjectName
	Columns []Ident
}

func (ForeignKeyOption) columnOptionNode() {}

func (o ForeignKeyOption) String() string {
	if len(o.Columns) > 0 {
		return "REFERENCES " + o.Table.String() + " (" + commaSeparated(o.Columns) + ")"
	}
	return "REFERENCES " + o.Table.String()
}

// CheckOption is CHECK (<expr>).
type CheckOption struct {
	Expr Expr
}

func (CheckOption) columnOptionNode() {}

func (o CheckOption) String() string { return "CHECK (" + o.Expr.String() + ")" }

// NamedOption covers dialect keywords carried verbatim, such as MySQL
// AUTO_INCREMENT or a COMMENT 'text' clause.
type NamedOption struct {
	Name  string
	Value Expr
}

func (NamedOption) columnOptionNode() {}

func (o NamedOption) String() string {
	if o.Value != nil {
		return o.Name + " " + o.Value.String()
	}
	return o.Name
}

// TableConstraint is the marker interface for table-level constraints.
// Variants: *UniqueConstraint, *ForeignKeyConstraint, *CheckConstraint.
type TableConstraint interface {
	Node
	tableConstraintNode()
}

func constraintName(name *Ident) string {
	if name == nil {
		return ""
	}
	return "CONSTRAINT " + name.String() + " "
}

// UniqueConstraint is [CONSTRAINT name] UNIQUE|PRIMARY KEY (columns).
type UniqueConstraint struct {
	Name      *Ident
	Columns   []Ident
	IsPrimary bool
}

func (*UniqueConstraint) tableConstraintNode() {}

func (c *UniqueConstraint) String() string {
	kw := "UNIQUE"
	if c.IsPrimary {
		kw = "PRIMARY KEY"
	}
	return fmt.Sprintf("%s%s (%s)", constraintName(c.Name), kw, commaSeparated(c.Columns))
}

// ForeignKeyConstraint is [CONSTRAINT name] FOREIGN KEY (columns)
// REFERENCES table [(columns)].
type ForeignKeyConstraint struct {
	Name           *Ident
	Columns        []Ident
	ForeignTable   ObjectName
	ReferredColumns []Ident
}

func (*ForeignKeyConstraint) tableConstraintNode() {}

func (c *ForeignKeyConstraint) String() string {
	var sb strings.Builder
	sb.WriteString(constraintName(c.Name))
	fmt.Fprintf(&sb, "FOREIGN KEY (%s) REFERENCES %s", commaSeparated(c.Columns), c.ForeignTable)
	if len(c.ReferredColumns) > 0 {
		fmt.Fprintf(&sb, " (%s)", commaSeparated(c.ReferredColumns))
	}
	return sb.String()
}

// CheckConstraint is [CONSTRAINT name] CHECK (<expr>).
type CheckConstraint struct {
	Name *Ident
	Expr Expr
}

func (*CheckConstraint) tableConstraintNode() {}

func (c *CheckConstraint) String() string {
	return fmt.Sprintf("%sCHECK (%s)", constraintName(c.Name), c.Expr)
}

// AlterTableOperation is the marker interface for ALTER TABLE actions.
type AlterTableOperation interface {
	Node
	alterTableOpNode()
}

// AddColumn is ADD COLUMN <def>.
type AddColumn struct {
	IfNotExists bool
	Column      ColumnDef
}

func (*AddColumn) alterTableOpNode() {}

func (a *AddColumn) String() string {
	if a.IfNotExists {
		return "ADD COLUMN IF NOT EXISTS " + a.Column.String()
	}
	return "ADD COLUMN " + a.Column.String()
}

// AddConstraint is ADD <table constraint>.
type AddConstraint struct {
	Constraint TableConstraint
}

func (*AddConstraint) alterTableOpNode() {}

func (a *AddConstraint) String() string { return "ADD " + a.Constraint.String() }

// DropColumn is DROP COLUMN [IF EXISTS] name [CASCADE].
type DropColumn struct {
	Name     Ident
	IfExists bool
	Cascade  bool
}

func (*DropColumn) alterTableOpNode() {}

func (d *DropColumn) String() string {
	var sb strings.Builder
	sb.WriteString("DROP COLUMN ")
	if d.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(d.Name.String())
	if d.Cascade {
		sb.WriteString(" CASCADE")
	}
	return sb.String()
}

// RenameColumn is RENAME COLUMN old TO new.
type RenameColumn struct {
	Old Ident
	New Ident
}

func (*RenameColumn) alterTableOpNode() {}

func (r *RenameColumn) String() string {
	return fmt.Sprintf("RENAME COLUMN %s TO %s", r.Old, r.New)
}

// RenameTable is RENAME TO <name>.
type RenameTable struct {
	Name ObjectName
}

func (*RenameTable) alterTableOpNode() {}

func (r *RenameTable) String() string { return "RENAME TO " + r.Name.String() }

// AlterColumn is ALTER COLUMN name <action>.
type AlterColumn struct {
	Name Ident
	Op   AlterColumnOperation
}

func (*AlterColumn) alterTableOpNode() {}

func (a *AlterColumn) String() string {
	return fmt.Sprintf("ALTER COLUMN %s %s", a.Name, a.Op)
}

// AlterColumnOperation is the action inside ALTER COLUMN.
type AlterColumnOperation interface {
	Node
	alterColumnOpNode()
}

// SetNotNull is SET NOT NULL.
type SetNotNull struct{}

func (SetNotNull) alterColumnOpNode() {}
func (SetNotNull) String() string     { return "SET NOT NULL" }

// DropNotNull is DROP NOT NULL.
type DropNotNull struct{}

func (DropNotNull) alterColumnOpNode() {}
func (DropNotNull) String() string     { return "DROP NOT NULL" }

// SetDefault is SET DEFAULT <expr>.
type SetDefault struct {
	Expr Expr
}

func (SetDefault) alterColumnOpNode() {}
func (s SetDefault) String() string   { return "SET DEFAULT " + s.Expr.String() }

// DropDefault is DROP DEFAULT.
type DropDefault struct{}

func (DropDefault) alterColumnOpNode() {}
func (DropDefault) String() string     { return "DROP DEFAULT" }

// SetDataType is SET DATA TYPE <type> [USING <expr>].
type SetDataType struct {
	DataType DataType
	Using    Expr
}

func (SetDataType) alterColumnOpNode() {}

func (s SetDataType) String() string {
	if s.Using != nil {
		return fmt.Sprintf("SET DATA TYPE %s USING %s", s.DataType, s.Using)
	}
	return "SET DATA TYPE " + s.DataType.String()
}
