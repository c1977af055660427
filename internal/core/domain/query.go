package domain

// QueryMethod - тип условия запроса к коллекции документов.
type QueryMethod string

const (
	QueryEqual     QueryMethod = "equal"
	QueryOrderAsc  QueryMethod = "orderAsc"
	QueryOrderDesc QueryMethod = "orderDesc"
	QueryLimit     QueryMethod = "limit"
	QuerySearch    QueryMethod = "search"
	QueryOr        QueryMethod = "or"
)

// AttributeCreatedAt - системный атрибут времени создания документа.
const AttributeCreatedAt = "$createdAt"

// Query - одно условие запроса. Для QueryOr значения - вложенные Query.
type Query struct {
	Method    QueryMethod   `json:"method"`
	Attribute string        `json:"attribute,omitempty"`
	Values    []interface{} `json:"values,omitempty"`
}

func OrderAsc(attribute string) Query {
	return Query{Method: QueryOrderAsc, Attribute: attribute}
}

func OrderDesc(attribute string) Query {
	return Query{Method: QueryOrderDesc, Attribute: attribute}
}

func Equal(attribute string, value interface{}) Query {
	return Query{Method: QueryEqual, Attribute: attribute, Values: []interface{}{value}}
}

func Limit(n int) Query {
	return Query{Method: QueryLimit, Values: []interface{}{n}}
}

func Search(attribute, text string) Query {
	return Query{Method: QuerySearch, Attribute: attribute, Values: []interface{}{text}}
}

// Or combines several queries; the backend matches documents satisfying any of them.
func Or(queries ...Query) Query {
	values := make([]interface{}, len(queries))
	for i, q := range queries {
		values[i] = q
	}
	return Query{Method: QueryOr, Values: values}
}
