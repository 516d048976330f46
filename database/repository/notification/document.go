package notificationRepo

import (
	"context"
	"sort"

	"thanawyia/database/document"
	"thanawyia/models"
	"thanawyia/utils"
)

type DocumentNotificationRepo struct {
	store *document.CollectionRepository
}

func NewDocumentNotificationRepo(store *document.CollectionRepository) NotificationRepository {
	return &DocumentNotificationRepo{store: store}
}

func (r *DocumentNotificationRepo) ListByAccount(ctx context.Context, accountID string) ([]models.Notification, error) {
	all, err := document.List[models.Notification](ctx, r.store, document.Notifications)
	if err != nil {
		return nil, utils.Persistence("load notifications", err)
	}
	out := []models.Notification{}
	for _, n := range all {
		if n.UserID == accountID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *DocumentNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		return document.Append(tx, document.Notifications, *n)
	})
	return utils.Persistence("create notification", err)
}

func (r *DocumentNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	all, err := document.List[models.Notification](ctx, r.store, document.Notifications)
	if err != nil {
		return nil, utils.Persistence("load notifications", err)
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, utils.NotFound("notification %s not found", id)
}

func (r *DocumentNotificationRepo) MarkAsRead(ctx context.Context, id string) (*models.Notification, error) {
	var updated models.Notification
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		n, err := document.Update(tx, document.Notifications, func(item *models.Notification) (bool, error) {
			if item.ID != id {
				return false, nil
			}
			item.Read = true
			updated = *item
			return true, nil
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return utils.NotFound("notification %s not found", id)
		}
		return nil
	})
	if err != nil {
		return nil, utils.Persistence("mark notification as read", err)
	}
	return &updated, nil
}

func (r *DocumentNotificationRepo) MarkAllAsRead(ctx context.Context, accountID string) (int, error) {
	changed := 0
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		var err error
		changed, err = document.Update(tx, document.Notifications, func(item *models.Notification) (bool, error) {
			if item.UserID != accountID || item.Read {
				return false, nil
			}
			item.Read = true
			return true, nil
		})
		return err
	})
	if err != nil {
		return 0, utils.Persistence("mark notifications as read", err)
	}
	return changed, nil
}
