package repository

// Models lists every entity for schema migration.
func Models() []interface{} {
	return []interface{}{
		&Group{},
		&Category{},
		&Event{},
		&Contestant{},
		&Registration{},
		&Result{},
		&GalleryImage{},
		&CarouselImage{},
		&Operator{},
	}
}
