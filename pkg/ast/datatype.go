package ast

import (
	"fmt"
	"strings"
)

// DataTypeKind classifies a SQL data type.
type DataTypeKind int

// Data type kinds.
const (
	TypeBoolean DataTypeKind = iota
	TypeSmallInt
	TypeInt
	TypeBigInt
	TypeReal
	TypeDouble
	TypeFloat
	TypeDecimal
	TypeNumeric
	TypeChar
	TypeVarchar
	TypeText
	TypeString
	TypeUUID
	TypeDate
	TypeTime
	TypeTimestamp
	TypeInterval
	TypeBytea
	TypeBlob
	TypeBinary
	TypeVarbinary
	TypeArray
	TypeCustom
)

// DataType is a SQL data type reference. It records what was written, not
// what an engine would resolve it to; TypeCustom covers anything the parser
// does not recognize by keyword.
type DataType struct {
	Kind      DataTypeKind
	Length    *uint64 // CHAR(n), VARCHAR(n), FLOAT(n), BINARY(n)
	Precision *uint64 // DECIMAL(p[,s])
	Scale     *uint64
	TimeZone  bool      // TIMESTAMP/TIME WITH TIME ZONE
	Unsigned  bool      // MySQL integer modifier
	Elem      *DataType // array element type
	Name      ObjectName
}

func (d DataType) String() string {
	var sb strings.Builder
	switch d.Kind {
	case TypeBoolean:
		sb.WriteString("BOOLEAN")
	case TypeSmallInt:
		sb.WriteString("SMALLINT")
	case TypeInt:
		sb.WriteString("INT")
	case TypeBigInt:
		sb.WriteString("BIGINT")
	case TypeReal:
		sb.WriteString("REAL")
	case TypeDouble:
		sb.WriteString("DOUBLE")
	case TypeFloat:
		sb.WriteString("FLOAT")
		d.writeLength(&sb)
	case TypeDecimal:
		sb.WriteString("DECIMAL")
		d.writePrecisionScale(&sb)
	case TypeNumeric:
		sb.WriteString("NUMERIC")
		d.writePrecisionScale(&sb)
	case TypeChar:
		sb.WriteString("CHAR")
		d.writeLength(&sb)
	case TypeVarchar:
		sb.WriteString("VARCHAR")
		d.writeLength(&sb)
	case TypeText:
		sb.WriteString("TEXT")
	case TypeString:
		sb.WriteString("STRING")
	case TypeUUID:
		sb.WriteString("UUID")
	case TypeDate:
		sb.WriteString("DATE")
	case TypeTime:
		sb.WriteString("TIME")
		if d.TimeZone {
			sb.WriteString(" WITH TIME ZONE")
		}
	case TypeTimestamp:
		sb.WriteString("TIMESTAMP")
		if d.TimeZone {
			sb.WriteString(" WITH TIME ZONE")
		}
	case TypeInterval:
		sb.WriteString("INTERVAL")
	case TypeBytea:
		sb.WriteString("BYTEA")
	case TypeBlob:
		sb.WriteString("BLOB")
	case TypeBinary:
		sb.WriteString("BINARY")
		d.writeLength(&sb)
	case TypeVarbinary:
		sb.WriteString("VARBINARY")
		d.writeLength(&sb)
	case TypeArray:
		if d.Elem != nil {
			sb.WriteString(d.Elem.String())
		}
		sb.WriteString("[]")
	case TypeCustom:
		sb.WriteString(d.Name.String())
	}
	if d.Unsigned {
		sb.WriteString(" UNSIGNED")
	}
	return sb.String()
}

func (d *DataType) writeLength(sb *strings.Builder) {
	if d.Length != nil {
		fmt.Fprintf(sb, "(%d)", *d.Length)
	}
}

func (d *DataType) writePrecisionScale(sb *strings.Builder) {
	if d.Precision == nil {
		return
	}
	if d.Scale != nil {
		fmt.Fprintf(sb, "(%d,%d)", *d.Precision, *d.Scale)
	} else {
		fmt.Fprintf(sb, "(%d)", *d.Precision)
	}
}

// DateTimeField names the unit in EXTRACT and INTERVAL expressions.
type DateTimeField int

// Date/time fields.
const (
	FieldNone DateTimeField = iota
	FieldYear
	FieldMonth
	FieldWeek
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldCentury
	FieldDecade
	FieldDow
	FieldDoy
	FieldEpoch
	FieldIsodow
	FieldIsoyear
	FieldJulian
	FieldMicrosecond
	FieldMillisecond
	FieldQuarter
	FieldTimezone
)

func (f DateTimeField) String() string {
	switch f {
	case FieldYear:
		return "YEAR"
	case FieldMonth:
		return "MONTH"
	case FieldWeek:
		return "WEEK"
	case FieldDay:
		return "DAY"
	case FieldHour:
		return "HOUR"
	case FieldMinute:
		return "MINUTE"
	case FieldSecond:
		return "SECOND"
	case FieldCentury:
		return "CENTURY"
	case FieldDecade:
		return "DECADE"
	case FieldDow:
		return "DOW"
	case FieldDoy:
		return "DOY"
	case FieldEpoch:
		return "EPOCH"
	case FieldIsodow:
		return "ISODOW"
	case FieldIsoyear:
		return "ISOYEAR"
	case FieldJulian:
		return "JULIAN"
	case FieldMicrosecond:
		return "MICROSECOND"
	case FieldMillisecond:
		return "MILLISECOND"
	case FieldQuarter:
		return "QUARTER"
	case FieldTimezone:
		return "TIMEZONE"
	default:
		return ""
	}
}
