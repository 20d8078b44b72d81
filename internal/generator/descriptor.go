package generator

// ClassDecl describes a class or struct opener.
type ClassDecl struct {
	Name string
	Kind string // "class" or "struct"
}

// Param is a single function parameter. Name may be empty for unnamed
// parameters, which produce no @param line.
type Param struct {
	Type string
	Name string
}

// FunctionDecl describes a function, method, constructor, destructor or
// copy/move assignment operator. The special-member flags refine each
// other: a copy constructor is also a constructor, and so on.
type FunctionDecl struct {
	Name       string
	ReturnType string // storage and qualifier keywords stripped
	Params     []Param

	IsConst    bool
	IsStatic   bool
	IsNoexcept bool
	ThrowSpec  []string // legacy throw(...) exception types, nil if absent

	IsConstructor     bool
	IsDestructor      bool
	IsCopyConstructor bool
	IsMoveConstructor bool
	IsCopyAssignment  bool
	IsMoveAssignment  bool
}

// VariableDecl describes a member or file-scope variable declaration.
type VariableDecl struct {
	Name        string
	Type        string
	IsStatic    bool
	IsConstexpr bool
	IsMutable   bool

	fullDecl string // joined declaration text, used to reject stray matches
}

// EnumDecl describes a named enum. Anonymous enums are never matched.
type EnumDecl struct {
	Name string
}
