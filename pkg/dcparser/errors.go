/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import (
	"errors"

	"github.com/voedger/dclass/pkg/dclass"
)

var (
	ErrLexical           = errors.New("lexical error")
	ErrSyntax            = errors.New("syntax error")
	ErrRedeclared        = errors.New("redeclared")
	ErrUndeclared        = errors.New("undeclared")
	ErrWrongKind         = errors.New("wrong kind")
	ErrInvalidNumeric    = errors.New("invalid numeric")
	ErrInvalidValue      = errors.New("invalid value")
	ErrOutOfRange        = errors.New("out of range")
	ErrNesting           = errors.New("nesting mismatch")
	ErrUndeclaredKeyword = errors.New("undeclared keyword")
	ErrFieldRejected     = errors.New("field rejected")
)

func ErrUnexpectedChar(ch string) error {
	return dclass.EnrichError(ErrLexical, "Unexpected character '%s'.", ch)
}

func ErrTypeNotDeclared(name string) error {
	return dclass.EnrichError(ErrUndeclared, "Type '%s' has not been declared.", name)
}

func ErrClassNotDeclared(name string) error {
	return dclass.EnrichError(ErrUndeclared, "'class %s' has not been declared.", name)
}

func ErrInheritNonClass(b dclass.Binding, name string) error {
	what := "non-class"
	if b == dclass.Binding_struct {
		what = "struct"
	}
	return dclass.EnrichError(ErrWrongKind, "class cannot inherit from %s type '%s'.", what, name)
}

func ErrDuplicateParent(parent, class string) error {
	return dclass.EnrichError(ErrRedeclared, "Class '%s' is already a parent of 'class %s'.", parent, class)
}

func ErrNameRedeclared(what dclass.Binding, name string, existing dclass.Binding) error {
	return dclass.EnrichError(ErrRedeclared,
		"Cannot add '%v %s' to file because a %v was already declared with that name.", what, name, existing)
}

func ErrKeywordRedeclared(kw string) error {
	return dclass.EnrichError(ErrRedeclared, "Keyword '%s' was already declared.", kw)
}

func ErrKeywordNotDeclared(kw string) error {
	return dclass.EnrichError(ErrUndeclaredKeyword, "Keyword '%s' has not been declared.", kw)
}

func ErrKeywordInStruct(field string) error {
	return dclass.EnrichError(ErrFieldRejected, "Keywords are not allowed on field '%s' of a struct.", field)
}

func ErrFieldExists(field string, owner string) error {
	return dclass.EnrichError(ErrRedeclared,
		"Cannot add field '%s', a field with that name already exists in '%s'.", field, owner)
}

func ErrFieldNamedAsStruct(field string) error {
	return dclass.EnrichError(ErrFieldRejected, "Field '%s' has the same name as its struct.", field)
}

var (
	ErrConstructorNotFirst  = dclass.EnrichError(ErrFieldRejected, "The constructor must be the first field in the class.")
	ErrMolecularConstructor = dclass.EnrichError(ErrFieldRejected, "Cannot use a molecular field as a constructor.")
	ErrConstructorInStruct  = dclass.EnrichError(ErrFieldRejected, "A constructor can't be defined in a struct.")
	ErrMethodInStruct       = dclass.EnrichError(ErrFieldRejected, "A method can't be defined in a struct.")
	ErrMethodType           = dclass.EnrichError(ErrWrongKind, "Cannot use a method type here.")
	ErrInvalidRange         = dclass.EnrichError(ErrInvalidNumeric, "Invalid range for type.")
	ErrInvalidModulus       = dclass.EnrichError(ErrInvalidNumeric, "Invalid modulus for type.")
	ErrInvalidDivisor       = dclass.EnrichError(ErrInvalidNumeric, "Invalid divisor for type.")
	ErrInvalidArrayRange    = dclass.EnrichError(ErrInvalidNumeric, "Invalid range for array.")
	ErrFloatForInteger      = dclass.EnrichError(ErrInvalidValue, "Cannot use floating-point value for integer datatype.")
	ErrNegativeForUnsigned  = dclass.EnrichError(ErrOutOfRange, "Can't use negative value for unsigned integer datatype.")
	ErrOddHexDigits         = dclass.EnrichError(ErrInvalidValue, "Hex value must have an even number of digits.")
)

func ErrMolecularInStruct(field string) error {
	return dclass.EnrichError(ErrFieldRejected, "Cannot add molecular '%s' to a struct.", field)
}

func ErrAtomNotDefined(atom string) error {
	return dclass.EnrichError(ErrUndeclared, "Field '%s' not defined in current class.", atom)
}

func ErrNestedMolecular(atom string) error {
	return dclass.EnrichError(ErrFieldRejected, "Cannot add molecular '%s' to a molecular field.", atom)
}

func ErrKeywordsMismatch(first, atom string) error {
	return dclass.EnrichError(ErrFieldRejected, "Mismatched keywords in molecular between %s and %s.", first, atom)
}

func ErrParameterExists(name string) error {
	return dclass.EnrichError(ErrRedeclared,
		"Cannot add parameter '%s', a parameter with that name is already used in this method.", name)
}

func ErrModifierOnNonNumeric(t *dclass.Type) error {
	return dclass.EnrichError(ErrWrongKind, "Cannot use range, modulus or divisor on non-numeric type '%v'.", t)
}

func ErrNumberLiteral(lit string) error {
	return dclass.EnrichError(ErrInvalidNumeric, "Number '%s' can not be represented.", lit)
}

func ErrCharLiteral(lit string) error {
	return dclass.EnrichError(ErrInvalidValue, "Character '%s' does not fit into a byte.", lit)
}

func ErrSignedOutOfRange(k dclass.Kind) error {
	return dclass.EnrichError(ErrOutOfRange, "Signed integer out of range for type '%s'.", k.TrimString())
}

func ErrUnsignedOutOfRange(k dclass.Kind) error {
	return dclass.EnrichError(ErrOutOfRange, "Unsigned integer out of range for type '%s'.", k.TrimString())
}

func ErrFloatOutOfRange(k dclass.Kind) error {
	return dclass.EnrichError(ErrOutOfRange, "Value is out of range for type '%s'.", k.TrimString())
}

func ErrValueNotInRange(v dclass.Number, r dclass.NumericRange, t *dclass.Type) error {
	return dclass.EnrichError(ErrOutOfRange, "Value %v is out of range (%v) for type '%v'.", v, r, t)
}

func ErrNumberForNonNumeric(t *dclass.Type) error {
	return dclass.EnrichError(ErrWrongKind, "Cannot use numeric value for non-numeric type '%v'.", t)
}

func ErrStringForNonString(t *dclass.Type) error {
	return dclass.EnrichError(ErrWrongKind, "Cannot use string value for non-string type '%v'.", t)
}

func ErrHexForNonBlob(t *dclass.Type) error {
	return dclass.EnrichError(ErrWrongKind, "Cannot use hex value for non-blob type '%v'.", t)
}

func ErrFixedLength(t *dclass.Type, want uint64, got int) error {
	what := "string"
	if k := t.Kind(); k == dclass.Kind_blob || k == dclass.Kind_varblob {
		what = "blob"
	}
	return dclass.EnrichError(ErrInvalidValue,
		"Value for fixed-length %s has incorrect length: expected %d, got %d.", what, want, got)
}

func ErrLengthNotInRange(length uint64, r dclass.ArrayRange) error {
	return dclass.EnrichError(ErrOutOfRange, "Length %d is out of range (%v).", length, r)
}

func ErrTooLong(length uint64) error {
	return dclass.EnrichError(ErrOutOfRange, "Length %d does not fit into length prefix.", length)
}

func ErrElementCount(t *dclass.Type, want, got uint64) error {
	return dclass.EnrichError(ErrInvalidValue, "Array '%v' needs exactly %d elements, got %d.", t, want, got)
}

func ErrElementCountNotInRange(t *dclass.Type, r dclass.ArrayRange, got uint64) error {
	return dclass.EnrichError(ErrOutOfRange, "Array '%v' element count %d is out of range (%v).", t, got, r)
}

func ErrStructComposition(t *dclass.Type) error {
	return dclass.EnrichError(ErrWrongKind, "Cannot use struct-composition for non-struct type '%v'.", t)
}

func ErrArrayComposition(t *dclass.Type) error {
	return dclass.EnrichError(ErrWrongKind, "Cannot use array-composition for non-array type '%v'.", t)
}

func ErrArrayExpansion(t *dclass.Type) error {
	return dclass.EnrichError(ErrWrongKind, "Cannot use array expansion for non-array type '%v'.", t)
}

func ErrTooManyValues(what string) error {
	return dclass.EnrichError(ErrNesting, "Too many nested values while parsing value for %s.", what)
}

func ErrTooFewValues(what string) error {
	return dclass.EnrichError(ErrNesting, "Too few nested values while parsing value for %s.", what)
}
