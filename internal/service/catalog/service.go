// Package catalog serves the public property listing and per-user
// favorites. Favorites write through to MySQL and mirror into a Redis
// set per user; the set is treated as a best-effort accelerator and is
// rebuilt from the database when absent.
package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"imovel_hub_server/internal/dao/mysql/repository"
	myredis "imovel_hub_server/internal/dao/redis"
	"imovel_hub_server/internal/dto/respond"
	"imovel_hub_server/internal/model"
	"imovel_hub_server/pkg/constants"
	"imovel_hub_server/pkg/errorx"
	"imovel_hub_server/pkg/util/pagination"
)

// catalogService implements service.CatalogService.
type catalogService struct {
	repos *repository.Repositories
}

// NewCatalogService creates the catalog service.
func NewCatalogService(repos *repository.Repositories) *catalogService {
	return &catalogService{repos: repos}
}

// ListProperties pages through the catalog with optional city and name
// filters.
func (s *catalogService) ListProperties(city, search, rawPage string) (*respond.PropertyListRespond, error) {
	page := pagination.ParsePage(rawPage)
	offset := pagination.Offset(page, constants.CATALOG_PAGE_SIZE)

	properties, total, err := s.repos.Property.GetPropertyList(city, search, offset, constants.CATALOG_PAGE_SIZE)
	if err != nil {
		zap.L().Error("list properties", zap.String("city", city), zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeQueryFailed, "property list query failed")
	}

	items := make([]respond.PropertyListItem, 0, len(properties))
	for i := range properties {
		items = append(items, toListItem(&properties[i]))
	}

	return &respond.PropertyListRespond{
		Properties: items,
		Total:      total,
		TotalPages: pagination.TotalPages(total, constants.CATALOG_PAGE_SIZE),
	}, nil
}

// GetProperty returns a property together with its units.
func (s *catalogService) GetProperty(uuid string) (*respond.PropertyDetailRespond, error) {
	property, err := s.repos.Property.FindByUuid(uuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "property not found")
		}
		return nil, err
	}

	units, err := s.repos.Unit.FindByPropertyUuid(uuid)
	if err != nil {
		zap.L().Error("load property units", zap.String("property_uuid", uuid), zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeQueryFailed, "unit query failed")
	}

	unitDetails := make([]respond.UnitDetail, 0, len(units))
	for _, unit := range units {
		unitDetails = append(unitDetails, respond.UnitDetail{
			Id:          unit.Uuid,
			Identifier:  unit.Identifier,
			Block:       unit.Block,
			Price:       unit.Price,
			Bedrooms:    unit.Bedrooms,
			AreaSqm:     unit.AreaSqm,
			IsAvailable: unit.IsAvailable,
		})
	}

	return &respond.PropertyDetailRespond{
		Id:          property.Uuid,
		Name:        property.Name,
		Description: property.Description,
		Address:     property.Address(),
		City:        property.City,
		State:       property.State,
		PhotoPath:   property.PhotoPath,
		Units:       unitDetails,
	}, nil
}

// ToggleFavorite flips the favorite state and reports the new one:
// true when the property is now favorited.
func (s *catalogService) ToggleFavorite(userUuid, propertyUuid string) (bool, error) {
	if _, err := s.repos.Property.FindByUuid(propertyUuid); err != nil {
		if errorx.IsNotFound(err) {
			return false, errorx.New(errorx.CodeNotFound, "property not found")
		}
		return false, err
	}

	exists, err := s.repos.Favorite.Exists(userUuid, propertyUuid)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.repos.Favorite.Delete(userUuid, propertyUuid); err != nil {
			return false, err
		}
		s.mirrorFavorite(userUuid, propertyUuid, false)
		return false, nil
	}

	if err := s.repos.Favorite.Create(&model.Favorite{
		UserUuid:     userUuid,
		PropertyUuid: propertyUuid,
	}); err != nil {
		return false, err
	}
	s.mirrorFavorite(userUuid, propertyUuid, true)
	return true, nil
}

// ListFavorites resolves the caller's favorited properties. The Redis
// set is consulted first; on a miss (or with the cache disabled) the
// database answers and the set is backfilled.
func (s *catalogService) ListFavorites(userUuid string) ([]respond.PropertyListItem, error) {
	uuids := s.cachedFavoriteUuids(userUuid)
	if uuids == nil {
		dbUuids, err := s.repos.Favorite.FindByUser(userUuid)
		if err != nil {
			zap.L().Error("list favorites", zap.String("user_uuid", userUuid), zap.Error(err))
			return nil, errorx.Wrap(err, errorx.CodeQueryFailed, "favorite query failed")
		}
		uuids = dbUuids
		s.backfillFavorites(userUuid, uuids)
	}

	if len(uuids) == 0 {
		return []respond.PropertyListItem{}, nil
	}

	properties, err := s.repos.Property.FindByUuids(uuids)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeQueryFailed, "favorite property query failed")
	}

	items := make([]respond.PropertyListItem, 0, len(properties))
	for i := range properties {
		items = append(items, toListItem(&properties[i]))
	}
	return items, nil
}

func toListItem(p *model.Property) respond.PropertyListItem {
	return respond.PropertyListItem{
		Id:        p.Uuid,
		Name:      p.Name,
		City:      p.City,
		State:     p.State,
		Address:   p.Address(),
		PhotoPath: p.PhotoPath,
	}
}

func favoriteKey(userUuid string) string {
	return fmt.Sprintf("favorites:user:%s", userUuid)
}

// cachedFavoriteUuids returns the cached set, or nil when the cache is
// disabled, errored or empty (an empty set is indistinguishable from a
// never-populated one, so the database decides).
func (s *catalogService) cachedFavoriteUuids(userUuid string) []string {
	if !myredis.Enabled() {
		return nil
	}
	members, err := myredis.SMembers(favoriteKey(userUuid))
	if err != nil {
		zap.L().Warn("read favorites cache", zap.String("user_uuid", userUuid), zap.Error(err))
		return nil
	}
	if len(members) == 0 {
		return nil
	}
	return members
}

func (s *catalogService) backfillFavorites(userUuid string, uuids []string) {
	if !myredis.Enabled() || len(uuids) == 0 {
		return
	}
	members := make([]interface{}, 0, len(uuids))
	for _, id := range uuids {
		members = append(members, id)
	}
	if err := myredis.SAdd(favoriteKey(userUuid), members...); err != nil {
		zap.L().Warn("backfill favorites cache", zap.String("user_uuid", userUuid), zap.Error(err))
	}
}

func (s *catalogService) mirrorFavorite(userUuid, propertyUuid string, favorited bool) {
	if !myredis.Enabled() {
		return
	}
	var err error
	if favorited {
		err = myredis.SAdd(favoriteKey(userUuid), propertyUuid)
	} else {
		err = myredis.SRem(favoriteKey(userUuid), propertyUuid)
	}
	if err != nil {
		zap.L().Warn("mirror favorite to cache", zap.String("user_uuid", userUuid), zap.Error(err))
	}
}
