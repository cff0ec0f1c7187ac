package domain

// SchemaVersion é a versão atual do esquema do documento persistido
const SchemaVersion = 1

// Document é o documento raiz do estúdio: todas as coleções vivem juntas
// e são persistidas como um único payload. As fatias preservam a ordem
// de inserção; cada visão reordena por conta própria.
type Document struct {
	SchemaVersion int           `json:"schemaVersion"`
	NextID        int64         `json:"nextId"` // sequência monotônica de IDs
	Clients       []Client      `json:"clients"`
	Planner       []PlannerItem `json:"planner"`
	Efforts       []EffortLog   `json:"efforts"`
	Tasks         []Task        `json:"tasks"`
	Invoices      []Invoice     `json:"invoices"`
	Projections   []Projection  `json:"projections"`
}

// NewDocument cria o documento vazio padrão usado no primeiro acesso
func NewDocument() *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		NextID:        1,
		Clients:       []Client{},
		Planner:       []PlannerItem{},
		Efforts:       []EffortLog{},
		Tasks:         []Task{},
		Invoices:      []Invoice{},
		Projections:   []Projection{},
	}
}

// AllocateID consome o próximo ID da sequência do documento
func (d *Document) AllocateID() int64 {
	if d.NextID <= 0 {
		d.NextID = 1
	}

	id := d.NextID
	d.NextID++
	return id
}

// ClientByID retorna o cliente com o ID informado, ou nil
func (d *Document) ClientByID(id int64) *Client {
	for i := range d.Clients {
		if d.Clients[i].ID == id {
			return &d.Clients[i]
		}
	}
	return nil
}

// ClientName resolve o nome de um cliente; referências penduradas viram
// o rótulo "Unknown" em vez de falhar
func (d *Document) ClientName(id int64) string {
	if c := d.ClientByID(id); c != nil {
		return c.Name
	}
	return UnknownClientName
}

// Clone devolve uma cópia profunda do documento, para que as funções de
// agregação trabalhem sobre um snapshot estável
func (d *Document) Clone() *Document {
	clone := &Document{
		SchemaVersion: d.SchemaVersion,
		NextID:        d.NextID,
		Clients:       make([]Client, len(d.Clients)),
		Planner:       make([]PlannerItem, len(d.Planner)),
		Efforts:       make([]EffortLog, len(d.Efforts)),
		Tasks:         make([]Task, len(d.Tasks)),
		Invoices:      make([]Invoice, len(d.Invoices)),
		Projections:   make([]Projection, len(d.Projections)),
	}

	copy(clone.Clients, d.Clients)
	copy(clone.Planner, d.Planner)
	copy(clone.Efforts, d.Efforts)
	copy(clone.Projections, d.Projections)

	// Task.DueDate e Invoice.PaidDate são ponteiros e precisam de cópia própria
	for i, t := range d.Tasks {
		if t.DueDate != nil {
			due := *t.DueDate
			t.DueDate = &due
		}
		clone.Tasks[i] = t
	}

	for i, inv := range d.Invoices {
		if inv.PaidDate != nil {
			paid := *inv.PaidDate
			inv.PaidDate = &paid
		}
		clone.Invoices[i] = inv
	}

	return clone
}
