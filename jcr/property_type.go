package jcr

// PropertyType identifies the required type of a property value.
// The numeric values follow the JCR 2.0 property type constants; the zero
// value PropertyTypeUndefined doubles as the "unset" sentinel in declarative
// records.
type PropertyType int

const (
	PropertyTypeUndefined PropertyType = iota
	PropertyTypeString
	PropertyTypeBinary
	PropertyTypeLong
	PropertyTypeDouble
	PropertyTypeDate
	PropertyTypeBoolean
	PropertyTypeName
	PropertyTypePath
	PropertyTypeReference
	PropertyTypeWeakReference
	PropertyTypeURI
	PropertyTypeDecimal
)

var propertyTypeNames = map[PropertyType]string{
	PropertyTypeUndefined:     "undefined",
	PropertyTypeString:        "String",
	PropertyTypeBinary:        "Binary",
	PropertyTypeLong:          "Long",
	PropertyTypeDouble:        "Double",
	PropertyTypeDate:          "Date",
	PropertyTypeBoolean:       "Boolean",
	PropertyTypeName:          "Name",
	PropertyTypePath:          "Path",
	PropertyTypeReference:     "Reference",
	PropertyTypeWeakReference: "WeakReference",
	PropertyTypeURI:           "URI",
	PropertyTypeDecimal:       "Decimal",
}

func (t PropertyType) String() string {
	if name, ok := propertyTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// OnParentVersion specifies the versioning behavior of an item when its
// parent is checked in. Values follow the JCR OnParentVersionAction
// constants; the zero value means "not specified" and is never applied.
type OnParentVersion int

const (
	OnParentVersionUnset OnParentVersion = iota
	OnParentVersionCopy
	OnParentVersionVersion
	OnParentVersionInitialize
	OnParentVersionCompute
	OnParentVersionIgnore
	OnParentVersionAbort
)

var onParentVersionNames = map[OnParentVersion]string{
	OnParentVersionUnset:      "unset",
	OnParentVersionCopy:       "COPY",
	OnParentVersionVersion:    "VERSION",
	OnParentVersionInitialize: "INITIALIZE",
	OnParentVersionCompute:    "COMPUTE",
	OnParentVersionIgnore:     "IGNORE",
	OnParentVersionAbort:      "ABORT",
}

func (v OnParentVersion) String() string {
	if name, ok := onParentVersionNames[v]; ok {
		return name
	}
	return "unknown"
}
