package ast

import (
	"fmt"
	"strings"
)

// String implementations below exist for debugging and the `--ast` CLI flag
// (SPEC_FULL.md §1); they are not used by the parser, resolver, or
// interpreter, which all walk the typed nodes directly.

func (l *Literal) String() string {
	if l.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", l.Value)
}

func (g *Grouping) String() string {
	return "(group " + g.Inner.String() + ")"
}

func (u *Unary) String() string {
	return "(" + u.Op.Lexeme + " " + u.Right.String() + ")"
}

func (b *Binary) String() string {
	return "(" + b.Op.Lexeme + " " + b.Left.String() + " " + b.Right.String() + ")"
}

func (l *Logical) String() string {
	return "(" + l.Op.Lexeme + " " + l.Left.String() + " " + l.Right.String() + ")"
}

func (v *Variable) String() string {
	return v.Name.Lexeme
}

func (a *Assign) String() string {
	return "(= " + a.Name.Lexeme + " " + a.Value.String() + ")"
}

func (c *Call) String() string {
	sb := strings.Builder{}
	sb.WriteString("(call " + c.Callee.String())
	for _, arg := range c.Args {
		sb.WriteString(" " + arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (g *Get) String() string {
	return "(get " + g.Object.String() + " " + g.Name.Lexeme + ")"
}

func (s *Set) String() string {
	return "(set " + s.Object.String() + " " + s.Name.Lexeme + " " + s.Value.String() + ")"
}

func (t *This) String() string {
	return "this"
}

func (s *Super) String() string {
	return "(super " + s.Method.Lexeme + ")"
}

func (l *ListInitializer) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func (e *Expression) String() string {
	return e.Expr.String() + ";"
}

func (p *Print) String() string {
	return "print " + p.Expr.String() + ";"
}

func (v *Var) String() string {
	if v.Init == nil {
		return "var " + v.Name.Lexeme + ";"
	}
	return "var " + v.Name.Lexeme + " = " + v.Init.String() + ";"
}

func (b *Block) String() string {
	sb := strings.Builder{}
	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		sb.WriteString("  " + stmt.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (i *If) String() string {
	s := "if (" + i.Condition.String() + ") " + i.Then.String()
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

func (w *While) String() string {
	return "while (" + w.Condition.String() + ") " + w.Body.String()
}

func (f *Function) String() string {
	sb := strings.Builder{}
	sb.WriteString("fun " + f.Name.Lexeme + "(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Lexeme)
	}
	sb.WriteString(") {\n")
	for _, stmt := range f.Body {
		sb.WriteString("  " + stmt.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (r *Return) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

func (c *Class) String() string {
	sb := strings.Builder{}
	sb.WriteString("class " + c.Name.Lexeme)
	if c.Superclass != nil {
		sb.WriteString(" < " + c.Superclass.Name.Lexeme)
	}
	sb.WriteString(" {\n")
	for _, m := range c.Methods {
		sb.WriteString("  " + m.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}
