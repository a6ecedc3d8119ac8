// Package backup serializa todos los datos del salón a un documento XML
// descargable, el respaldo que la operadora puede guardarse fuera del sistema.
package backup

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// XMLExporter arma el documento de respaldo leyendo todos los repositorios.
type XMLExporter struct {
	materials      repository.MaterialRepository
	materialGroups repository.MaterialGroupRepository
	movements      repository.MovementRepository
	clients        repository.ClientRepository
	clientGroups   repository.ClientGroupRepository
	homeProducts   repository.HomeProductRepository
	visits         repository.VisitRepository
	orders         repository.OrderRepository
	services       repository.ServiceRepository
	settings       repository.SettingsRepository
}

// NewXMLExporter construye el exportador.
func NewXMLExporter(
	materials repository.MaterialRepository,
	materialGroups repository.MaterialGroupRepository,
	movements repository.MovementRepository,
	clients repository.ClientRepository,
	clientGroups repository.ClientGroupRepository,
	homeProducts repository.HomeProductRepository,
	visits repository.VisitRepository,
	orders repository.OrderRepository,
	services repository.ServiceRepository,
	settings repository.SettingsRepository,
) *XMLExporter {
	return &XMLExporter{
		materials:      materials,
		materialGroups: materialGroups,
		movements:      movements,
		clients:        clients,
		clientGroups:   clientGroups,
		homeProducts:   homeProducts,
		visits:         visits,
		orders:         orders,
		services:       services,
		settings:       settings,
	}
}

// Export genera el XML completo y devuelve sus bytes.
func (e *XMLExporter) Export() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("hairbook")
	root.CreateAttr("exportedAt", time.Now().Format(time.RFC3339))

	if err := e.writeSettings(root); err != nil {
		return nil, err
	}
	if err := e.writeMaterials(root); err != nil {
		return nil, err
	}
	clients, err := e.writeClients(root)
	if err != nil {
		return nil, err
	}
	if err := e.writeVisits(root, clients); err != nil {
		return nil, err
	}
	if err := e.writeOrders(root); err != nil {
		return nil, err
	}
	if err := e.writeCatalog(root); err != nil {
		return nil, err
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("backup: serializar XML: %w", err)
	}
	return out, nil
}

func (e *XMLExporter) writeSettings(root *etree.Element) error {
	settings, err := e.settings.Get()
	if err != nil {
		return err
	}
	el := root.CreateElement("salon")
	if settings == nil {
		return nil
	}
	el.CreateElement("name").SetText(settings.Name)
	el.CreateElement("address").SetText(settings.Address)
	el.CreateElement("phone").SetText(settings.Phone)
	el.CreateElement("email").SetText(settings.Email)
	el.CreateElement("ico").SetText(settings.ICO)
	el.CreateElement("dic").SetText(settings.DIC)
	return nil
}

func (e *XMLExporter) writeMaterials(root *etree.Element) error {
	groupsEl := root.CreateElement("materialGroups")
	groups, err := e.materialGroups.List()
	if err != nil {
		return err
	}
	for _, g := range groups {
		el := groupsEl.CreateElement("group")
		el.CreateAttr("id", g.ID)
		el.CreateAttr("order", fmt.Sprint(g.Order))
		el.SetText(g.Name)
	}

	materialsEl := root.CreateElement("materials")
	materials, err := e.materials.List("")
	if err != nil {
		return err
	}
	for _, m := range materials {
		el := materialsEl.CreateElement("material")
		el.CreateAttr("id", m.ID)
		el.CreateAttr("groupId", m.GroupID)
		el.CreateElement("name").SetText(m.Name)
		el.CreateElement("unit").SetText(m.Unit)
		el.CreateElement("packageSize").SetText(m.PackageSize.String())
		el.CreateElement("stockQuantity").SetText(m.StockQuantity.String())
		el.CreateElement("minStock").SetText(m.MinStock.String())
		el.CreateElement("isRetailProduct").SetText(fmt.Sprint(m.IsRetailProduct))

		// Libro completo del material, la parte que de verdad importa restaurar.
		movements, err := e.movements.ListByMaterial(m.ID, "", 100000)
		if err != nil {
			return err
		}
		ledgerEl := el.CreateElement("movements")
		for _, mv := range movements {
			writeMovement(ledgerEl, mv)
		}
	}
	return nil
}

func writeMovement(parent *etree.Element, mv *entity.MaterialMovement) {
	el := parent.CreateElement("movement")
	el.CreateAttr("id", mv.ID)
	el.CreateAttr("transactionId", mv.TransactionID)
	el.CreateAttr("type", mv.Type)
	el.CreateElement("quantity").SetText(mv.Quantity.String())
	if mv.Note != "" {
		el.CreateElement("note").SetText(mv.Note)
	}
	if mv.ClientID != nil {
		el.CreateElement("clientId").SetText(*mv.ClientID)
	}
	if mv.VisitID != nil {
		el.CreateElement("visitId").SetText(*mv.VisitID)
	}
	if mv.TotalPrice != nil {
		el.CreateElement("totalPrice").SetText(mv.TotalPrice.String())
	}
	el.CreateElement("createdAt").SetText(mv.CreatedAt.Format(time.RFC3339))
}

func (e *XMLExporter) writeClients(root *etree.Element) ([]*entity.Client, error) {
	groupsEl := root.CreateElement("clientGroups")
	groups, err := e.clientGroups.List()
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		el := groupsEl.CreateElement("group")
		el.CreateAttr("id", g.ID)
		el.CreateAttr("isSystem", fmt.Sprint(g.IsSystem))
		el.SetText(g.Name)
	}

	clientsEl := root.CreateElement("clients")
	clients, err := e.clients.List("")
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		el := clientsEl.CreateElement("client")
		el.CreateAttr("id", c.ID)
		if c.GroupID != nil {
			el.CreateAttr("groupId", *c.GroupID)
		}
		el.CreateElement("firstName").SetText(c.FirstName)
		el.CreateElement("lastName").SetText(c.LastName)
		el.CreateElement("phone").SetText(c.Phone)

		notes, err := e.clients.ListNotes(c.ID)
		if err != nil {
			return nil, err
		}
		if len(notes) > 0 {
			notesEl := el.CreateElement("notes")
			for _, n := range notes {
				noteEl := notesEl.CreateElement("note")
				noteEl.CreateAttr("createdAt", n.CreatedAt.Format(time.RFC3339))
				noteEl.SetText(n.Text)
			}
		}

		products, err := e.homeProducts.ListByClient(c.ID)
		if err != nil {
			return nil, err
		}
		if len(products) > 0 {
			productsEl := el.CreateElement("homeProducts")
			for _, hp := range products {
				hpEl := productsEl.CreateElement("product")
				hpEl.CreateAttr("purchaseId", hp.PurchaseID)
				hpEl.CreateElement("name").SetText(hp.Name)
				hpEl.CreateElement("quantity").SetText(hp.Quantity.String())
				hpEl.CreateElement("unit").SetText(hp.Unit)
				if hp.TotalPrice != nil {
					hpEl.CreateElement("totalPrice").SetText(hp.TotalPrice.String())
				}
			}
		}
	}
	return clients, nil
}

func (e *XMLExporter) writeVisits(root *etree.Element, clients []*entity.Client) error {
	visitsEl := root.CreateElement("visits")
	for _, c := range clients {
		visits, err := e.visits.ListByClient(c.ID)
		if err != nil {
			return err
		}
		for _, v := range visits {
			el := visitsEl.CreateElement("visit")
			el.CreateAttr("id", v.ID)
			el.CreateAttr("clientId", v.ClientID)
			el.CreateAttr("status", v.Status)
			if v.Note != "" {
				el.CreateElement("note").SetText(v.Note)
			}
			if v.TotalPrice != nil {
				el.CreateElement("totalPrice").SetText(v.TotalPrice.String())
			}
			el.CreateElement("createdAt").SetText(v.CreatedAt.Format(time.RFC3339))
			if v.ClosedAt != nil {
				el.CreateElement("closedAt").SetText(v.ClosedAt.Format(time.RFC3339))
			}
			for _, svc := range v.Services {
				svcEl := el.CreateElement("service")
				svcEl.CreateAttr("serviceId", svc.ServiceID)
				svcEl.CreateAttr("order", fmt.Sprint(svc.Order))
				for _, vm := range svc.Materials {
					vmEl := svcEl.CreateElement("material")
					vmEl.CreateAttr("materialId", vm.MaterialID)
					vmEl.CreateAttr("quantity", vm.Quantity.String())
					vmEl.CreateAttr("unit", vm.Unit)
				}
			}
		}
	}
	return nil
}

func (e *XMLExporter) writeOrders(root *etree.Element) error {
	ordersEl := root.CreateElement("orders")
	orders, err := e.orders.List()
	if err != nil {
		return err
	}
	for _, o := range orders {
		el := ordersEl.CreateElement("order")
		el.CreateAttr("id", o.ID)
		el.CreateAttr("status", o.Status)
		if o.Note != "" {
			el.CreateElement("note").SetText(o.Note)
		}
		el.CreateElement("createdAt").SetText(o.CreatedAt.Format(time.RFC3339))
		for _, item := range o.Items {
			itemEl := el.CreateElement("item")
			itemEl.CreateAttr("materialId", item.MaterialID)
			itemEl.CreateAttr("quantity", item.Quantity.String())
			if item.Price != nil {
				itemEl.CreateAttr("price", item.Price.String())
			}
		}
	}
	return nil
}

func (e *XMLExporter) writeCatalog(root *etree.Element) error {
	catalogEl := root.CreateElement("serviceCatalog")
	groups, err := e.services.ListGroups()
	if err != nil {
		return err
	}
	for _, g := range groups {
		groupEl := catalogEl.CreateElement("group")
		groupEl.CreateAttr("id", g.ID)
		groupEl.CreateAttr("name", g.Name)
		services, err := e.services.ListByGroup(g.ID)
		if err != nil {
			return err
		}
		for _, s := range services {
			svcEl := groupEl.CreateElement("service")
			svcEl.CreateAttr("id", s.ID)
			svcEl.SetText(s.Name)
		}
	}
	return nil
}
