// Package table 提供通用的表格模型：列既可以声明字段访问器，也可以
// 提供渲染函数；数据为空时输出横跨全部列的空态行。
package table

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
)

// 空态行的显示文案
const emptyStateText = "No data"

// Column 表格列。Render优先于Field；Field是json标签风格的字段
// 访问器，支持点号访问嵌套字段，如user.email。
type Column[T any] struct {
	Title  string
	Field  string
	Render func(row T) string
}

func (c Column[T]) cell(row T) string {
	if c.Render != nil {
		return c.Render(row)
	}
	return resolveField(reflect.ValueOf(row), c.Field)
}

// Table 通用表格
type Table[T any] struct {
	Title      string
	Columns    []Column[T]
	HasActions bool
}

// SpanWidth 空态行需要横跨的列数，带操作列时加一
func (t *Table[T]) SpanWidth() int {
	width := len(t.Columns)
	if t.HasActions {
		width++
	}
	return width
}

// Rows 把数据转换为单元格矩阵。数据为空时返回唯一的空态行。
func (t *Table[T]) Rows(data []T) [][]string {
	if len(data) == 0 {
		return [][]string{{emptyStateText}}
	}

	rows := make([][]string, 0, len(data))
	for _, item := range data {
		cells := make([]string, 0, len(t.Columns))
		for _, col := range t.Columns {
			cells = append(cells, col.cell(item))
		}
		rows = append(rows, cells)
	}
	return rows
}

// Filter 客户端keyword过滤。启用服务端搜索时过滤责任完全交给
// 服务端，这里原样返回，避免双重过滤。
func (t *Table[T]) Filter(data []T, keyword string, serverSide bool) []T {
	if serverSide || keyword == "" {
		return data
	}

	keyword = strings.ToLower(keyword)
	filtered := make([]T, 0, len(data))
	for _, item := range data {
		for _, col := range t.Columns {
			if strings.Contains(strings.ToLower(col.cell(item)), keyword) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// Render 把表格写成文本输出
func (t *Table[T]) Render(w io.Writer, data []T) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if t.Title != "" {
		fmt.Fprintln(tw, t.Title)
	}

	headers := make([]string, 0, t.SpanWidth())
	for _, col := range t.Columns {
		headers = append(headers, col.Title)
	}
	if t.HasActions {
		headers = append(headers, "Actions")
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, row := range t.Rows(data) {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// resolveField 按json标签解析字段访问器，逐段深入嵌套结构
func resolveField(value reflect.Value, field string) string {
	if field == "" {
		return ""
	}

	for _, segment := range strings.Split(field, ".") {
		value = fieldBySegment(value, segment)
		if !value.IsValid() {
			return ""
		}
	}

	value = indirect(value)
	if !value.IsValid() {
		return ""
	}
	return fmt.Sprintf("%v", value.Interface())
}

func fieldBySegment(value reflect.Value, segment string) reflect.Value {
	value = indirect(value)
	if !value.IsValid() || value.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	valueType := value.Type()
	for i := 0; i < valueType.NumField(); i++ {
		structField := valueType.Field(i)

		tag := structField.Tag.Get("json")
		if comma := strings.Index(tag, ","); comma >= 0 {
			tag = tag[:comma]
		}

		if tag == segment || (tag == "" && strings.EqualFold(structField.Name, segment)) {
			return value.Field(i)
		}
	}

	// 字段名回退，覆盖没有json标签的结构体
	if fallback := value.FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, segment)
	}); fallback.IsValid() {
		return fallback
	}

	return reflect.Value{}
}

func indirect(value reflect.Value) reflect.Value {
	for value.IsValid() && value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}
		}
		value = value.Elem()
	}
	return value
}
