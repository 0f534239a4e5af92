package dto

import (
	"schooldir/consts"
	"schooldir/validation"
)

// Request and response schemas for the trade-school API. These drive the
// validation pipeline; every constraint mirrors the public contract.

var CreateSchoolSchema = &validation.Schema{
	DisallowUnknown: true,
	Fields: []validation.Field{
		{Name: "name", Kind: validation.KindString, Required: true, MinLen: 1, MaxLen: 255},
		{Name: "location", Kind: validation.KindString, Required: true, MinLen: 1, MaxLen: 255},
		{Name: "programs", Kind: validation.KindStringSlice, Required: true, MinItems: 1},
		{Name: "website", Kind: validation.KindString, Required: true, URLSchemes: []string{"http", "https"}},
		{Name: "accredited", Kind: validation.KindBool},
	},
}

var UpdateSchoolSchema = &validation.Schema{
	DisallowUnknown:  true,
	RequireSomeField: true,
	Fields: []validation.Field{
		{Name: "name", Kind: validation.KindString, MinLen: 1, MaxLen: 255},
		{Name: "location", Kind: validation.KindString, MinLen: 1, MaxLen: 255},
		{Name: "programs", Kind: validation.KindStringSlice, MinItems: 1},
		{Name: "website", Kind: validation.KindString, URLSchemes: []string{"http", "https"}},
		{Name: "accredited", Kind: validation.KindBool},
	},
}

var SchoolQuerySchema = &validation.Schema{
	Fields: []validation.Field{
		{Name: "program", Kind: validation.KindString},
		{Name: "location", Kind: validation.KindString},
		{Name: "page", Kind: validation.KindInt},
		{Name: "limit", Kind: validation.KindInt},
	},
}

var StudentQuerySchema = &validation.Schema{
	Fields: []validation.Field{
		{Name: "enrolledProgram", Kind: validation.KindString},
		{Name: "status", Kind: validation.KindString, Enum: consts.StudentStatuses},
		{Name: "page", Kind: validation.KindInt},
		{Name: "limit", Kind: validation.KindInt},
	},
}

var PageQuerySchema = &validation.Schema{
	Fields: []validation.Field{
		{Name: "page", Kind: validation.KindInt},
		{Name: "limit", Kind: validation.KindInt},
	},
}

var StudentUUIDParamSchema = &validation.Schema{
	Fields: []validation.Field{
		{Name: "uuid", Kind: validation.KindString, Required: true, UUID: true},
	},
}

var IDParamSchema = &validation.Schema{
	Fields: []validation.Field{
		{Name: "id", Kind: validation.KindInt, Required: true, Positive: true},
	},
}

// SchoolResponseSchema is checked against outbound school payloads; a
// mismatch is logged and never alters the response.
var SchoolResponseSchema = &validation.Schema{
	Fields: []validation.Field{
		{Name: "id", Kind: validation.KindInt, Required: true, Positive: true},
		{Name: "name", Kind: validation.KindString, Required: true, MinLen: 1, MaxLen: 255},
		{Name: "location", Kind: validation.KindString, Required: true, MinLen: 1, MaxLen: 255},
		{Name: "programs", Kind: validation.KindStringSlice, Required: true, MinItems: 1},
		{Name: "website", Kind: validation.KindString, Required: true, URLSchemes: []string{"http", "https"}},
		{Name: "accredited", Kind: validation.KindBool, Required: true},
	},
}
